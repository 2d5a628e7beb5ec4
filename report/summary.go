/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"strconv"
	"strings"

	"chainguard.dev/loupe/review"
)

// Summary renders the run-level table: one row per file with its issue count
// and per-category histogram, plus a totals row. Error-flagged files render
// their error instead of counts.
func (r *Renderer) Summary(results []review.FileResult) {
	fmt.Fprintln(r.w, "\nRepository Review Summary")
	fmt.Fprintln(r.w, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(r.w)

	headers := []string{"File", "Issues"}
	for _, issueType := range review.Types() {
		headers = append(headers, string(issueType))
	}

	table := createStandardTable(headers, r.w)

	totals := make(map[review.IssueType]int, len(review.Types()))
	totalIssues := 0

	for _, result := range results {
		if result.Failed() {
			row := []string{result.Path, "error: " + result.Err}
			for range review.Types() {
				row = append(row, "-")
			}
			_ = table.Append(row)
			continue
		}

		row := []string{result.Path, strconv.Itoa(result.Count)}
		for _, issueType := range review.Types() {
			row = append(row, strconv.Itoa(result.Histogram[issueType]))
			totals[issueType] += result.Histogram[issueType]
		}
		totalIssues += result.Count
		_ = table.Append(row)
	}

	totalRow := []string{"Total", strconv.Itoa(totalIssues)}
	for _, issueType := range review.Types() {
		totalRow = append(totalRow, strconv.Itoa(totals[issueType]))
	}
	_ = table.Append(totalRow)

	_ = table.Render()
}
