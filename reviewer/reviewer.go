/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package reviewer turns chunks of source code into structured review
// issues by prompting a model backend and normalizing whatever comes back.
package reviewer

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/loupe/gitprovider"
	"chainguard.dev/loupe/requestbuilder"
	"chainguard.dev/loupe/review"
	"github.com/chainguard-dev/clog"
)

// Usage reports token consumption for a single model call.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
}

// Completer is the minimal chat completion surface implemented by each
// model backend.
type Completer interface {
	// Complete sends one system+user exchange and returns the raw
	// response text.
	Complete(ctx context.Context, system, prompt string) (string, Usage, error)
}

// Request is one unit of review work: a chunk of code together with its
// position in the file and the file's provenance.
type Request struct {
	// Code is the text the model will see.
	Code string
	// Language is the display label for the code's language.
	Language string
	// StartLine is the 1-based line of Code's first line within the
	// original file. Issue line numbers come back file-absolute.
	StartLine int
	// Commit carries the last-commit metadata for the file, when known.
	Commit *review.CommitInfo
}

// Reviewer drives a Completer and parses its responses into issues.
type Reviewer struct {
	completer Completer
}

// New wraps a model backend.
func New(c Completer) (*Reviewer, error) {
	if c == nil {
		return nil, errors.New("completer cannot be nil")
	}
	return &Reviewer{completer: c}, nil
}

// Review sends one chunk for review. It never returns an error: transport
// failures and unparseable responses both degrade to a single synthetic
// issue, so one bad file cannot derail a batch run.
func (r *Reviewer) Review(ctx context.Context, req Request) []review.Issue {
	log := clog.FromContext(ctx)

	startLine := req.StartLine
	if startLine < 1 {
		startLine = 1
	}

	prompt, err := requestbuilder.Prompt(req.Language, req.Code)
	if err != nil {
		log.With("error", err.Error()).Error("Building review prompt failed")
		return transportFallback(req, startLine, err)
	}

	text, usage, err := r.completer.Complete(ctx, requestbuilder.SystemPrompt, prompt)
	if err != nil {
		log.With("error", err.Error()).Error("AI review failed")
		return transportFallback(req, startLine, err)
	}

	log.With("prompt_tokens", usage.PromptTokens).
		With("completion_tokens", usage.CompletionTokens).
		Debug("Model call completed")

	parsed, err := parseReview(text)
	if err != nil {
		log.With("error", err.Error()).Warn("Model response was not structured, keeping raw text")
		return []review.Issue{{
			Type:       review.BestPractice,
			Line:       startLine,
			Message:    "General Review",
			Code:       review.WholeFile,
			Suggestion: review.Suggestion{Text: text},
			Commit:     req.Commit,
			Source:     req.Code,
		}}
	}

	issues := make([]review.Issue, 0, len(parsed.Issues))
	for _, raw := range parsed.Issues {
		line := raw.Line
		if line < 1 {
			line = 1
		}
		issue := review.Issue{
			Type:    review.ParseIssueType(raw.Type),
			Line:    line + startLine - 1,
			Message: raw.Message,
			Code:    raw.Code,
			Suggestion: review.Suggestion{
				Text: raw.Suggestion.Text,
				Code: raw.Suggestion.Code,
			},
			Impact: raw.Impact,
			Effort: raw.Effort,
		}
		attachProvenance(&issue, req.Commit)
		issues = append(issues, issue)
	}
	return issues
}

// transportFallback builds the single Critical issue that stands in for a
// failed model call.
func transportFallback(req Request, startLine int, err error) []review.Issue {
	return []review.Issue{{
		Type:       review.Critical,
		Line:       startLine,
		Message:    fmt.Sprintf("AI Review Error: %v", err),
		Code:       "N/A",
		Suggestion: review.Suggestion{Text: "Manual review recommended"},
		Commit:     req.Commit,
	}}
}

// attachProvenance links an issue to the commit that last touched the
// file, plus a pull request URL when a PR number was resolved.
func attachProvenance(issue *review.Issue, commit *review.CommitInfo) {
	if commit == nil {
		return
	}
	issue.Commit = commit
	if commit.PRNumber == "" {
		return
	}
	issue.PR = &review.PullRequest{
		Number: commit.PRNumber,
		URL:    gitprovider.Detect(commit.RepoURL).PullRequestURL(commit.RepoURL, commit.PRNumber),
	}
}
