/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"fmt"

	"chainguard.dev/loupe/metrics"
)

// Option configures the Coordinator.
type Option func(*Coordinator) error

// WithWorkers sets the worker pool size.
func WithWorkers(workers int) Option {
	return func(c *Coordinator) error {
		if workers <= 0 {
			return fmt.Errorf("workers must be positive, got %d", workers)
		}
		c.workers = workers
		return nil
	}
}

// WithChunkSize sets the per-request byte budget for splitting files.
func WithChunkSize(size int) Option {
	return func(c *Coordinator) error {
		if size <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", size)
		}
		c.chunkSize = size
		return nil
	}
}

// WithBackendLabel names the model backend on emitted metrics.
func WithBackendLabel(backend string) Option {
	return func(c *Coordinator) error {
		if backend == "" {
			return fmt.Errorf("backend label cannot be empty")
		}
		c.backend = backend
		return nil
	}
}

// WithProgress registers a completion callback. It is invoked once per
// finished file, possibly from concurrent workers.
func WithProgress(progress ProgressFunc) Option {
	return func(c *Coordinator) error {
		c.progress = progress
		return nil
	}
}

// WithAttributeEnricher adds contextual attributes to emitted metrics.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(c *Coordinator) error {
		c.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}
