/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"chainguard.dev/loupe/review"
	"github.com/go-git/go-git/v5"
)

// prPatterns match pull request references in commit messages, ordered by
// specificity. The first matching pattern wins.
var prPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Merge pull request #(\d+)`),
	regexp.MustCompile(`(?:^|\s)\(#(\d+)\)`),
	regexp.MustCompile(`(?:^|\s)#(\d+)`),
	regexp.MustCompile(`PR[:\s-]#?(\d+)`),
	regexp.MustCompile(`pull[/-](\d+)`),
}

// CommitInfo returns metadata for the most recent commit touching relPath.
func (m *Manager) CommitInfo(ctx context.Context, relPath string) (review.CommitInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.repo == nil {
		return review.CommitInfo{}, errors.New("repository not cloned")
	}

	path := filepath.ToSlash(relPath)
	iter, err := m.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		return review.CommitInfo{}, fmt.Errorf("reading log for %s: %w", relPath, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return review.CommitInfo{}, fmt.Errorf("no commit history for %s: %w", relPath, err)
	}

	return review.CommitInfo{
		Committer: commit.Committer.Name,
		Hash:      commit.Hash.String(),
		Message:   commit.Message,
		Date:      commit.Committer.When.Format(time.RFC3339),
		PRNumber:  extractPRNumber(commit.Message),
		RepoURL:   m.url,
	}, nil
}

// extractPRNumber pulls a pull request number out of a commit message, or ""
// when no pattern matches.
func extractPRNumber(message string) string {
	for _, pattern := range prPatterns {
		if match := pattern.FindStringSubmatch(message); match != nil {
			return match[1]
		}
	}
	return ""
}
