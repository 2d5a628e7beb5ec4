/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI provides OpenTelemetry metrics for generative AI operations.
// It includes counters for token usage (prompt and completion) and for
// review throughput, with support for graceful degradation if metric
// creation fails.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	filesReviewed    metric.Int64Counter
	issuesFound      metric.Int64Counter
	attrEnricher     AttributeEnricher
}

// NewGenAI creates a new GenAI metrics instance with the specified meter name.
// Uses graceful degradation: if any metric counter fails to initialize, logs a warning
// and uses a no-op counter instead of failing entirely.
//
// The meterName should be unified across all review backends (e.g., "chainguard.dev/loupe")
// with the model name serving as a dimension on the recorded metrics to differentiate
// between different models (GPT, Claude, Gemini, etc.).
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	filesReviewed, err := meter.Int64Counter("review.files.completed",
		metric.WithDescription("The number of files reviewed"),
		metric.WithUnit("{files}"))
	if err != nil {
		slog.Warn("Failed to create files reviewed counter, metrics will be disabled", "error", err, "meter", meterName)
		filesReviewed = noop.Int64Counter{}
	}

	issuesFound, err := meter.Int64Counter("review.issues.found",
		metric.WithDescription("The number of issues reported across reviewed files"),
		metric.WithUnit("{issues}"))
	if err != nil {
		slog.Warn("Failed to create issues found counter, metrics will be disabled", "error", err, "meter", meterName)
		issuesFound = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		filesReviewed:    filesReviewed,
		issuesFound:      issuesFound,
	}
}

// SetAttributeEnricher sets the attribute enricher for this metrics instance.
// The enricher is called before recording each metric to add contextual
// attributes (e.g., repository, provider).
func (m *GenAI) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

// RecordTokens records prompt and completion token usage with optional enrichment.
// The model parameter is added as a base attribute, and the enricher (if set)
// can add additional contextual attributes.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("model", model),
	}

	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	baseAttrs = append(baseAttrs, attrs...)

	m.promptTokens.Add(ctx, promptTokens, metric.WithAttributes(baseAttrs...))
	m.completionTokens.Add(ctx, completionTokens, metric.WithAttributes(baseAttrs...))
}

// RecordFile records one completed file review and the number of issues it
// produced. The backend parameter is added as a base attribute, and the
// enricher (if set) can add additional contextual attributes.
func (m *GenAI) RecordFile(ctx context.Context, backend string, issueCount int64, attrs ...attribute.KeyValue) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("backend", backend),
	}

	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	baseAttrs = append(baseAttrs, attrs...)

	m.filesReviewed.Add(ctx, 1, metric.WithAttributes(baseAttrs...))
	m.issuesFound.Add(ctx, issueCount, metric.WithAttributes(baseAttrs...))
}
