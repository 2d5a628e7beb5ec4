/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

// FileResult aggregates the review of a single file. One is produced per
// submitted file, whether the review succeeded or not.
type FileResult struct {
	// Path is the file's path relative to the repository root.
	Path   string
	Commit CommitInfo
	Issues []Issue
	// Source snapshots the reviewed file text.
	Source string
	Count  int
	// Histogram counts issues per category. Every category is present,
	// zero-valued when unused, so summaries never need existence checks.
	Histogram map[IssueType]int
	// Err is set when the file's review failed before producing issues.
	// Error records carry zero issues.
	Err string
}

// NewFileResult builds the record for a successfully reviewed file, computing
// the issue count and per-category histogram.
func NewFileResult(path string, commit CommitInfo, issues []Issue, source string) FileResult {
	return FileResult{
		Path:      path,
		Commit:    commit,
		Issues:    issues,
		Source:    source,
		Count:     len(issues),
		Histogram: histogram(issues),
	}
}

// ErrorResult records a file whose review failed outright. The error text is
// kept so the run-level report stays complete without re-raising.
func ErrorResult(path string, err error) FileResult {
	return FileResult{
		Path:      path,
		Err:       err.Error(),
		Histogram: histogram(nil),
	}
}

// Failed reports whether this record is an error-flagged one.
func (r FileResult) Failed() bool {
	return r.Err != ""
}

func histogram(issues []Issue) map[IssueType]int {
	hist := make(map[IssueType]int, len(Types()))
	for _, t := range Types() {
		hist[t] = 0
	}
	for _, issue := range issues {
		hist[issue.Type]++
	}
	return hist
}
