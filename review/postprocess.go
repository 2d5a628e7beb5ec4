/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"sort"
	"unicode/utf8"
)

// dedupePrefixLen bounds the message prefix used as the dedupe key. Messages
// that diverge only beyond this prefix are treated as duplicates.
const dedupePrefixLen = 100

// Deduplicate drops issues that share a (line, message-prefix) key with an
// earlier issue. The first occurrence wins and survivor order is preserved.
// This is a heuristic, not semantic equality: near-duplicates that differ
// inside the prefix are kept.
func Deduplicate(issues []Issue) []Issue {
	type key struct {
		line   int
		prefix string
	}

	seen := make(map[key]struct{}, len(issues))
	unique := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		k := key{line: issue.Line, prefix: messagePrefix(issue.Message)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, issue)
	}
	return unique
}

func messagePrefix(msg string) string {
	if utf8.RuneCountInString(msg) <= dedupePrefixLen {
		return msg
	}
	return string([]rune(msg)[:dedupePrefixLen])
}

// SortByLine orders issues by ascending line number. The sort is stable so
// same-line issues keep their arrival order.
func SortByLine(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Line < issues[j].Line
	})
}

// AttachSource fills each issue's Source with the reviewed file text where the
// client did not already embed one.
func AttachSource(issues []Issue, source string) {
	for i := range issues {
		if issues[i].Source == "" {
			issues[i].Source = source
		}
	}
}

// Postprocess applies the full post-processing pass to a file's issues:
// deduplication, stable line ordering, then source enrichment.
func Postprocess(issues []Issue, source string) []Issue {
	unique := Deduplicate(issues)
	SortByLine(unique)
	AttachSource(unique, source)
	return unique
}
