/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"errors"
	"testing"
)

func TestParseIssueType(t *testing.T) {
	tests := []struct {
		input string
		want  IssueType
	}{
		{"Critical Issue", Critical},
		{"CRITICAL ISSUE", Critical},
		{"critical", Critical},
		{"Improvement Needed", ImprovementNeeded},
		{"IMPROVEMENT NEEDED", ImprovementNeeded},
		{"Best Practice", BestPractice},
		{"best practices", BestPractice},
		{"Security Concern", SecurityConcern},
		{"security", SecurityConcern},
		{"Performance Impact", PerformanceImpact},
		{"  Performance Impact  ", PerformanceImpact},
		{"Style Nit", BestPractice},
		{"", BestPractice},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseIssueType(tt.input); got != tt.want {
				t.Errorf("ParseIssueType(%q) = %q, wanted = %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypesOrder(t *testing.T) {
	want := []IssueType{Critical, ImprovementNeeded, BestPractice, SecurityConcern, PerformanceImpact}
	got := Types()
	if len(got) != len(want) {
		t.Fatalf("len(Types()) = %d, wanted = %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %q, wanted = %q", i, got[i], want[i])
		}
	}
}

func TestNewFileResult(t *testing.T) {
	issues := []Issue{
		{Type: Critical, Line: 3},
		{Type: Critical, Line: 9},
		{Type: SecurityConcern, Line: 14},
	}
	res := NewFileResult("pkg/server.go", CommitInfo{Hash: "abc123"}, issues, "package server")

	if res.Count != 3 {
		t.Errorf("Count = %d, wanted = 3", res.Count)
	}
	if res.Failed() {
		t.Error("Failed() = true, wanted = false")
	}
	if got := res.Histogram[Critical]; got != 2 {
		t.Errorf("Histogram[Critical] = %d, wanted = 2", got)
	}
	if got := res.Histogram[SecurityConcern]; got != 1 {
		t.Errorf("Histogram[SecurityConcern] = %d, wanted = 1", got)
	}
	// Unused categories are present with zero counts.
	for _, typ := range []IssueType{ImprovementNeeded, BestPractice, PerformanceImpact} {
		if got, ok := res.Histogram[typ]; !ok || got != 0 {
			t.Errorf("Histogram[%s] = %d (present=%t), wanted = 0 (present)", typ, got, ok)
		}
	}
}

func TestErrorResult(t *testing.T) {
	res := ErrorResult("broken.py", errors.New("read failed"))

	if !res.Failed() {
		t.Fatal("Failed() = false, wanted = true")
	}
	if res.Err != "read failed" {
		t.Errorf("Err = %q, wanted = %q", res.Err, "read failed")
	}
	if len(res.Issues) != 0 || res.Count != 0 {
		t.Errorf("issues = %d, count = %d, wanted = 0, 0", len(res.Issues), res.Count)
	}
	for _, typ := range Types() {
		if res.Histogram[typ] != 0 {
			t.Errorf("Histogram[%s] = %d, wanted = 0", typ, res.Histogram[typ])
		}
	}
}
