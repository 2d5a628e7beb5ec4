/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/report"
	"chainguard.dev/loupe/review"
)

func sampleCommit() review.CommitInfo {
	return review.CommitInfo{
		Committer: "Ada Lovelace",
		Hash:      "abcd1234deadbeef",
		Date:      "2026-01-02T15:04:05Z",
		PRNumber:  "42",
		RepoURL:   "https://github.com/acme/widgets",
	}
}

func TestFileHeader(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.FileHeader(review.NewFileResult("src/main.py", sampleCommit(), nil, ""))

	out := buf.String()
	for _, want := range []string{
		"Review Results for src/main.py",
		strings.Repeat("=", 80),
		"File Information:",
		"Last modified by: Ada Lovelace",
		"Commit date: 2026-01-02T15:04:05Z",
		"PR number: 42",
		"Commit hash: abcd1234deadbeef",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFileHeaderError(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.FileHeader(review.ErrorResult("src/broken.py", errors.New("read failed")))

	out := buf.String()
	if !strings.Contains(out, "Error: read failed") {
		t.Errorf("output missing error line:\n%s", out)
	}
	if strings.Contains(out, "File Information:") {
		t.Errorf("error record rendered commit block:\n%s", out)
	}
}

func TestFileHeaderZeroCommit(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.FileHeader(review.NewFileResult("src/new.py", review.CommitInfo{}, nil, ""))

	out := buf.String()
	if !strings.Contains(out, "Last modified by: N/A") {
		t.Errorf("zero commit did not render N/A:\n%s", out)
	}
}

func TestIssuesEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.Issues(review.NewFileResult("src/main.py", sampleCommit(), nil, ""))

	if !strings.Contains(buf.String(), "No issues found in the code!") {
		t.Errorf("output missing empty marker:\n%s", buf.String())
	}
}

func TestIssuesGrouping(t *testing.T) {
	commit := sampleCommit()
	issues := []review.Issue{{
		Type:    review.BestPractice,
		Line:    12,
		Message: "Prefer table-driven tests",
		Impact:  "low",
		Effort:  "small",
	}, {
		Type:       review.Critical,
		Line:       3,
		Message:    "Unchecked error",
		Code:       "x, _ := f()",
		Suggestion: review.Suggestion{Text: "Handle the error", Code: "x, err := f()"},
		Impact:     "high",
		Effort:     "small",
		Commit:     &commit,
		PR:         &review.PullRequest{Number: "42", URL: "https://github.com/acme/widgets/pull/42"},
	}, {
		Type:    review.Critical,
		Line:    8,
		Message: "Nil dereference",
		Impact:  "high",
		Effort:  "medium",
	}}

	var buf bytes.Buffer
	r := report.NewRenderer(&buf)
	r.Issues(review.NewFileResult("src/main.py", commit, issues, "source text"))

	out := buf.String()
	for _, want := range []string{
		"Critical Issue (2)",
		"Best Practice (1)",
		strings.Repeat("-", 40),
		"Line 3: Unchecked error",
		"Impact Level: high",
		"Effort Estimate: small",
		"Commit Information:",
		"Committer: Ada Lovelace",
		"Commit Hash: abcd1234deadbeef",
		"Pull Request Information:",
		"PR Number: #42",
		"PR URL: https://github.com/acme/widgets/pull/42",
		"Original Code:\nx, _ := f()",
		"Explanation:\nHandle the error",
		"Suggested Fix:\nx, err := f()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Critical issues render before best practices regardless of input
	// order.
	if strings.Index(out, "Critical Issue (2)") > strings.Index(out, "Best Practice (1)") {
		t.Errorf("groups out of order:\n%s", out)
	}
}

func TestIssueWholeFile(t *testing.T) {
	issues := []review.Issue{{
		Type:       review.BestPractice,
		Line:       1,
		Message:    "General Review",
		Code:       review.WholeFile,
		Suggestion: review.Suggestion{Text: "raw model text"},
		Source:     "def f():\n    pass",
	}}

	var buf bytes.Buffer
	r := report.NewRenderer(&buf)
	r.Issues(review.NewFileResult("src/main.py", review.CommitInfo{}, issues, ""))

	out := buf.String()
	if !strings.Contains(out, "Original Code:\ndef f():\n    pass") {
		t.Errorf("whole-file issue did not render embedded source:\n%s", out)
	}
}

func TestIssueNoCode(t *testing.T) {
	issues := []review.Issue{{
		Type:       review.Critical,
		Line:       1,
		Message:    "AI Review Error: timeout",
		Code:       "N/A",
		Suggestion: review.Suggestion{Text: "Manual review recommended"},
	}}

	var buf bytes.Buffer
	r := report.NewRenderer(&buf)
	r.Issues(review.NewFileResult("src/main.py", review.CommitInfo{}, issues, "source"))

	if strings.Contains(buf.String(), "Original Code:") {
		t.Errorf("N/A code rendered a code block:\n%s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	commit := sampleCommit()
	results := []review.FileResult{
		review.NewFileResult("a.py", commit, []review.Issue{
			{Type: review.Critical, Line: 1, Message: "x"},
			{Type: review.BestPractice, Line: 2, Message: "y"},
		}, ""),
		review.ErrorResult("b.py", errors.New("boom")),
		review.NewFileResult("c.py", commit, nil, ""),
	}

	var buf bytes.Buffer
	r := report.NewRenderer(&buf)
	r.Summary(results)

	out := buf.String()
	for _, want := range []string{
		"Repository Review Summary",
		"File",
		"Critical Issue",
		"a.py",
		"error: boom",
		"c.py",
		"Total",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "|") {
		t.Errorf("summary did not render as a table:\n%s", out)
	}
}

func TestFileListing(t *testing.T) {
	files := []clonemanager.File{
		{RelPath: "src/main.py", AbsPath: "/tmp/clone/src/main.py"},
		{RelPath: "util.go", AbsPath: "/tmp/clone/util.go"},
	}
	infos := []review.CommitInfo{sampleCommit(), {}}

	var buf bytes.Buffer
	r := report.NewRenderer(&buf)
	r.FileListing(files, infos)

	out := buf.String()
	for _, want := range []string{
		"Available files for review:",
		"1. src/main.py",
		"   Last modified by: Ada Lovelace",
		"   PR: #42",
		"   Commit: abcd1234",
		"2. util.go",
		"   Last modified by: N/A",
		"   PR: None",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "abcd1234deadbeef") {
		t.Errorf("hash was not truncated:\n%s", out)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.Progress(1, 2)
	r.Progress(2, 2)

	out := buf.String()
	if !strings.Contains(out, "\rProgress: 1/2 files reviewed (50.0%)") {
		t.Errorf("output missing first update:\n%q", out)
	}
	if !strings.Contains(out, "\rProgress: 2/2 files reviewed (100.0%)\n") {
		t.Errorf("output missing final update with newline:\n%q", out)
	}
}

func TestProgressZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewRenderer(&buf)

	r.Progress(0, 0)
	if buf.Len() != 0 {
		t.Errorf("Progress(0, 0) wrote %q", buf.String())
	}
}
