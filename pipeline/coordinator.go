/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline coordinates the parallel review run: a bounded worker
// pool reviews files independently, failures degrade to error records, and
// progress is reported as files complete.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/requestbuilder"
	"chainguard.dev/loupe/review"
	"chainguard.dev/loupe/reviewer"
	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the worker pool size applied when no override is
// configured.
const DefaultWorkers = 3

// CommitLookup resolves per-file commit metadata. *clonemanager.Manager
// satisfies this.
type CommitLookup interface {
	CommitInfo(ctx context.Context, relPath string) (review.CommitInfo, error)
}

// ProgressFunc receives completion updates. done is monotonically
// non-decreasing and reaches total exactly once.
type ProgressFunc func(done, total int)

// Coordinator fans a set of files out to a bounded pool of review workers.
type Coordinator struct {
	lookup       CommitLookup
	reviewer     *reviewer.Reviewer
	workers      int
	chunkSize    int
	backend      string
	progress     ProgressFunc
	genaiMetrics *metrics.GenAI
}

// New constructs a Coordinator around a commit lookup and a reviewer.
func New(lookup CommitLookup, rev *reviewer.Reviewer, opts ...Option) (*Coordinator, error) {
	switch {
	case lookup == nil:
		return nil, fmt.Errorf("commit lookup cannot be nil")
	case rev == nil:
		return nil, fmt.Errorf("reviewer cannot be nil")
	}

	c := &Coordinator{
		lookup:       lookup,
		reviewer:     rev,
		workers:      DefaultWorkers,
		chunkSize:    requestbuilder.DefaultChunkSize,
		backend:      "unknown",
		genaiMetrics: metrics.NewGenAI("chainguard.dev/loupe"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// ReviewAll reviews every file and returns one result per file, in
// completion order. Individual failures produce error records rather than
// aborting the run, so len(results) == len(files) always holds.
func (c *Coordinator) ReviewAll(ctx context.Context, files []clonemanager.File) []review.FileResult {
	total := len(files)
	results := make(chan review.FileResult, total)
	var done atomic.Int64

	// Workers never return an error: errgroup is used for its bounded
	// concurrency and Wait semantics, not fail-fast.
	g := new(errgroup.Group)
	g.SetLimit(c.workers)

	for _, file := range files {
		g.Go(func() error {
			results <- c.reviewOne(ctx, file)

			n := done.Add(1)
			if c.progress != nil {
				c.progress(int(n), total)
			}
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	out := make([]review.FileResult, 0, total)
	for result := range results {
		out = append(out, result)
	}
	return out
}

// reviewOne runs the full per-file flow: read, decode, extract, chunk,
// review, post-process.
func (c *Coordinator) reviewOne(ctx context.Context, file clonemanager.File) review.FileResult {
	log := clog.FromContext(ctx).With("file", file.RelPath)

	raw, err := os.ReadFile(file.AbsPath)
	if err != nil {
		log.With("error", err.Error()).Error("Reading file failed")
		return review.ErrorResult(file.RelPath, err)
	}

	code := decode(raw)

	if strings.EqualFold(filepath.Ext(file.RelPath), ".ipynb") {
		extracted, cells, err := requestbuilder.NotebookCode(code)
		if err != nil {
			log.With("error", err.Error()).Error("Notebook extraction failed")
			return review.ErrorResult(file.RelPath, err)
		}
		log.With("code_cells", len(cells)).Debug("Extracted notebook code")
		code = extracted
	}

	language := requestbuilder.DetectLanguage(file.RelPath)

	var commit *review.CommitInfo
	if info, err := c.lookup.CommitInfo(ctx, file.RelPath); err != nil {
		log.With("error", err.Error()).Warn("Commit lookup failed, continuing without metadata")
	} else {
		commit = &info
	}

	chunks := requestbuilder.Split(code, c.chunkSize)
	log.With("language", language).
		With("chunks", len(chunks)).
		Info("Reviewing file")

	var issues []review.Issue
	for _, chunk := range chunks {
		issues = append(issues, c.reviewer.Review(ctx, reviewer.Request{
			Code:      chunk.Text,
			Language:  language,
			StartLine: chunk.StartLine,
			Commit:    commit,
		})...)
	}

	issues = review.Postprocess(issues, code)
	c.genaiMetrics.RecordFile(ctx, c.backend, int64(len(issues)))

	var info review.CommitInfo
	if commit != nil {
		info = *commit
	}
	return review.NewFileResult(file.RelPath, info, issues, code)
}

// decode interprets raw as UTF-8, falling back to a Latin-1 reading when the
// bytes do not validate. Every byte maps to a rune, so the fallback cannot
// fail and no file is rejected for its encoding.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
