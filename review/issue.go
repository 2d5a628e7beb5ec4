/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package review defines the issue model shared across the pipeline and the
// post-processing applied to every reviewed file's findings.
package review

import "strings"

// IssueType classifies a single review finding. The set is closed: anything a
// model emits outside of it is folded into BestPractice by ParseIssueType.
type IssueType string

const (
	Critical          IssueType = "Critical Issue"
	ImprovementNeeded IssueType = "Improvement Needed"
	BestPractice      IssueType = "Best Practice"
	SecurityConcern   IssueType = "Security Concern"
	PerformanceImpact IssueType = "Performance Impact"
)

// WholeFile is the Code marker for issues that apply to the entire reviewed
// file rather than a snippet. Renderers print the embedded Source for these.
const WholeFile = "whole file"

// Types returns the issue types in display order. Grouping and histograms
// iterate this slice so output ordering is stable.
func Types() []IssueType {
	return []IssueType{Critical, ImprovementNeeded, BestPractice, SecurityConcern, PerformanceImpact}
}

// ParseIssueType maps a model-emitted category string onto the closed set.
// Matching is case-insensitive because the prompt advertises the categories in
// upper case. Unrecognized values map to BestPractice.
func ParseIssueType(s string) IssueType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical issue", "critical":
		return Critical
	case "improvement needed", "improvement":
		return ImprovementNeeded
	case "best practice", "best practices":
		return BestPractice
	case "security concern", "security":
		return SecurityConcern
	case "performance impact", "performance":
		return PerformanceImpact
	default:
		return BestPractice
	}
}

// CommitInfo describes the most recent commit touching a reviewed file. It is
// produced once per file by the clone manager and never mutated.
type CommitInfo struct {
	Committer string
	Hash      string
	Message   string
	// Date is the committer timestamp in ISO-8601 form.
	Date string
	// PRNumber is empty when no pull request reference was found in the
	// commit message.
	PRNumber string
	RepoURL  string
}

// PullRequest links an issue back to the pull request that introduced the
// code. URL is empty for providers without a known link scheme.
type PullRequest struct {
	Number string
	URL    string
}

// Suggestion carries the model's proposed fix: prose plus an optional
// replacement snippet.
type Suggestion struct {
	Text string
	Code string
}

// Issue is a single review finding. Line is 1-based and file-absolute; the
// chunk-start shift has already been applied by the time an Issue exists.
type Issue struct {
	Type    IssueType
	Line    int
	Message string
	// Code is the offending snippet, the WholeFile marker for fallback
	// reviews, or "N/A" when no snippet applies.
	Code       string
	Suggestion Suggestion
	// Impact is high/medium/low, free-form if the model strays.
	Impact string
	// Effort is small/medium/large.
	Effort string
	Commit *CommitInfo
	PR     *PullRequest
	// Source holds the reviewed file text. The post-processor fills it so
	// rendering never needs the file handle again.
	Source string
}
