/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders review results to the console: per-file issue
// detail, the run-level summary table, and progress updates.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/review"
)

const (
	bannerWidth = 80
	ruleWidth   = 40
)

// Renderer writes human-readable review output to w.
type Renderer struct {
	// mu guards Progress, which is invoked from concurrent review workers.
	// Everything else renders sequentially once the run has completed.
	mu sync.Mutex
	w  io.Writer
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// FileHeader prints the per-file banner and commit metadata block. Error
// records print their error instead.
func (r *Renderer) FileHeader(result review.FileResult) {
	fmt.Fprintf(r.w, "\nReview Results for %s\n", result.Path)
	fmt.Fprintln(r.w, strings.Repeat("=", bannerWidth))

	if result.Failed() {
		fmt.Fprintf(r.w, "Error: %s\n", result.Err)
		return
	}

	fmt.Fprintln(r.w, "\nFile Information:")
	fmt.Fprintf(r.w, "Last modified by: %s\n", orNA(result.Commit.Committer))
	fmt.Fprintf(r.w, "Commit date: %s\n", orNA(result.Commit.Date))
	fmt.Fprintf(r.w, "PR number: %s\n", orNA(result.Commit.PRNumber))
	fmt.Fprintf(r.w, "Commit hash: %s\n", orNA(result.Commit.Hash))
}

// Issues prints a file's findings grouped by category, in the stable
// review.Types order.
func (r *Renderer) Issues(result review.FileResult) {
	if len(result.Issues) == 0 {
		fmt.Fprintln(r.w, "\nNo issues found in the code!")
		return
	}

	for _, issueType := range review.Types() {
		var group []review.Issue
		for _, issue := range result.Issues {
			if issue.Type == issueType {
				group = append(group, issue)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(r.w, "\n%s (%d)\n", issueType, len(group))
		fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))

		for _, issue := range group {
			r.issue(issue, result.Source)
		}
	}
}

func (r *Renderer) issue(issue review.Issue, source string) {
	fmt.Fprintf(r.w, "\nLine %d: %s\n", issue.Line, issue.Message)
	fmt.Fprintf(r.w, "Impact Level: %s\n", orNA(issue.Impact))
	fmt.Fprintf(r.w, "Effort Estimate: %s\n", orNA(issue.Effort))

	if issue.Commit != nil {
		fmt.Fprintln(r.w, "\nCommit Information:")
		fmt.Fprintf(r.w, "Committer: %s\n", orNA(issue.Commit.Committer))
		fmt.Fprintf(r.w, "Commit Hash: %s\n", orNA(issue.Commit.Hash))
		fmt.Fprintf(r.w, "Commit Date: %s\n", orNA(issue.Commit.Date))

		if issue.PR != nil {
			fmt.Fprintln(r.w, "\nPull Request Information:")
			fmt.Fprintf(r.w, "PR Number: #%s\n", issue.PR.Number)
			if issue.PR.URL != "" {
				fmt.Fprintf(r.w, "PR URL: %s\n", issue.PR.URL)
			}
		}
	}

	switch {
	case issue.Code == review.WholeFile:
		content := issue.Source
		if content == "" {
			content = source
		}
		if content != "" {
			fmt.Fprintln(r.w, "\nOriginal Code:")
			fmt.Fprintln(r.w, content)
		}
	case issue.Code != "" && issue.Code != "N/A":
		fmt.Fprintln(r.w, "\nOriginal Code:")
		fmt.Fprintln(r.w, issue.Code)
	}

	if issue.Suggestion.Text != "" {
		fmt.Fprintln(r.w, "\nExplanation:")
		fmt.Fprintln(r.w, issue.Suggestion.Text)
	}
	if issue.Suggestion.Code != "" {
		fmt.Fprintln(r.w, "\nSuggested Fix:")
		fmt.Fprintln(r.w, issue.Suggestion.Code)
	}

	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
}

// FileListing prints the pre-review file inventory with per-file commit
// metadata. infos is parallel to files; missing entries render as N/A.
func (r *Renderer) FileListing(files []clonemanager.File, infos []review.CommitInfo) {
	fmt.Fprintln(r.w, "\nAvailable files for review:")
	for i, file := range files {
		var info review.CommitInfo
		if i < len(infos) {
			info = infos[i]
		}

		fmt.Fprintf(r.w, "%d. %s\n", i+1, file.RelPath)
		fmt.Fprintf(r.w, "   Last modified by: %s\n", orNA(info.Committer))
		fmt.Fprintf(r.w, "   Date: %s\n", orNA(info.Date))
		if info.PRNumber != "" {
			fmt.Fprintf(r.w, "   PR: #%s\n", info.PRNumber)
		} else {
			fmt.Fprintln(r.w, "   PR: None")
		}
		if info.Hash != "" {
			fmt.Fprintf(r.w, "   Commit: %.8s\n", info.Hash)
		}
	}
}

// Progress rewrites the in-place completion line. Safe to call from
// concurrent workers; the final update ends the line.
func (r *Renderer) Progress(done, total int) {
	if total <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pct := float64(done) / float64(total) * 100
	fmt.Fprintf(r.w, "\rProgress: %d/%d files reviewed (%.1f%%)", done, total, pct)
	if done == total {
		fmt.Fprintln(r.w)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
