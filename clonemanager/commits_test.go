/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"context"
	"testing"
	"time"
)

func TestCommitInfo(t *testing.T) {
	ctx := context.Background()
	repoDir, hashes := initTestRepo(t)

	m, err := New(repoDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Clone(ctx); err != nil {
		t.Fatalf("Clone: %v", err)
	}
	t.Cleanup(func() { _ = m.Discard() })

	info, err := m.CommitInfo(ctx, "main.py")
	if err != nil {
		t.Fatalf("CommitInfo: %v", err)
	}
	if info.Hash != hashes[0] {
		t.Errorf("Hash = %s, wanted = %s", info.Hash, hashes[0])
	}
	if info.Committer != "Ada Lovelace" {
		t.Errorf("Committer = %q, wanted = %q", info.Committer, "Ada Lovelace")
	}
	if info.PRNumber != "42" {
		t.Errorf("PRNumber = %q, wanted = %q", info.PRNumber, "42")
	}
	if info.RepoURL != repoDir {
		t.Errorf("RepoURL = %q, wanted = %q", info.RepoURL, repoDir)
	}
	if _, err := time.Parse(time.RFC3339, info.Date); err != nil {
		t.Errorf("Date %q is not RFC3339: %v", info.Date, err)
	}

	// A file only touched by the second commit reports that commit.
	info, err = m.CommitInfo(ctx, "sub/helper.js")
	if err != nil {
		t.Fatalf("CommitInfo: %v", err)
	}
	if info.Hash != hashes[1] {
		t.Errorf("Hash = %s, wanted = %s", info.Hash, hashes[1])
	}
	if info.PRNumber != "7" {
		t.Errorf("PRNumber = %q, wanted = %q", info.PRNumber, "7")
	}
}

func TestCommitInfoMissingFile(t *testing.T) {
	ctx := context.Background()
	repoDir, _ := initTestRepo(t)

	m, err := New(repoDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Clone(ctx); err != nil {
		t.Fatalf("Clone: %v", err)
	}
	t.Cleanup(func() { _ = m.Discard() })

	if _, err := m.CommitInfo(ctx, "missing.py"); err == nil {
		t.Error("CommitInfo for untracked path succeeded, wanted error")
	}
}

func TestCommitInfoBeforeClone(t *testing.T) {
	m, err := New("https://github.com/acme/widgets")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := m.CommitInfo(context.Background(), "main.py"); err == nil {
		t.Error("CommitInfo before Clone succeeded, wanted error")
	}
}

func TestExtractPRNumber(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{{
		name:    "merge commit",
		message: "Merge pull request #123 from org/branch",
		want:    "123",
	}, {
		name:    "squash suffix",
		message: "Fix parser crash (#45)",
		want:    "45",
	}, {
		name:    "leading squash reference",
		message: "(#45) fix parser crash",
		want:    "45",
	}, {
		name:    "bare issue reference",
		message: "Fix #7 crash on empty input",
		want:    "7",
	}, {
		name:    "pr prefix",
		message: "PR-12 follow up",
		want:    "12",
	}, {
		name:    "pull path",
		message: "backport of pull/33",
		want:    "33",
	}, {
		name:    "merge wins over squash",
		message: "Merge pull request #1 fixes (#2)",
		want:    "1",
	}, {
		name:    "no reference",
		message: "tidy imports",
		want:    "",
	}, {
		name:    "number without marker",
		message: "bump to version 42",
		want:    "",
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractPRNumber(tc.message); got != tc.want {
				t.Errorf("extractPRNumber(%q) = %q, wanted = %q", tc.message, got, tc.want)
			}
		})
	}
}
