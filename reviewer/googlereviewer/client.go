/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlereviewer

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/requestbuilder"
	"chainguard.dev/loupe/reviewer"
	"chainguard.dev/loupe/reviewer/retry"
	"chainguard.dev/loupe/schema"
	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-2.5-flash"

// Client sends review requests to the Gemini API.
type Client struct {
	genai          *genai.Client
	model          string
	maxTokens      int32
	temperature    float32
	responseSchema *genai.Schema
	genaiMetrics   *metrics.GenAI
	retryConfig    retry.Config
}

// New connects to the Gemini API with the given key.
//
// By default responses are constrained to the review schema via the API's
// structured output support, in addition to the schema embedded in the
// prompt itself.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	c := &Client{
		genai:          client,
		model:          DefaultModel,
		maxTokens:      2000,
		temperature:    0.3,
		responseSchema: schema.ToGenai(schema.ReflectType[requestbuilder.Review]()),
		genaiMetrics:   metrics.NewGenAI("chainguard.dev/loupe"),
		retryConfig:    retry.DefaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// Complete implements reviewer.Completer.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, reviewer.Usage, error) {
	log := clog.FromContext(ctx)
	log.With("model", c.model).
		With("prompt_length", len(prompt)).
		Debug("Sending Gemini review request")

	config := &genai.GenerateContentConfig{
		Temperature:     ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: system,
			}},
		},
		ResponseMIMEType: "application/json",
	}
	if c.responseSchema != nil {
		config.ResponseSchema = c.responseSchema
	}

	response, err := retry.Do(ctx, c.retryConfig, "generate_content", isRetryableVertexError, func() (*genai.GenerateContentResponse, error) {
		return c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	})
	if err != nil {
		return "", reviewer.Usage{}, fmt.Errorf("gemini generate: %w", err)
	}

	var usage reviewer.Usage
	if response.UsageMetadata != nil {
		usage.PromptTokens = int64(response.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int64(response.UsageMetadata.CandidatesTokenCount)
		if usage.PromptTokens > 0 || usage.CompletionTokens > 0 {
			c.genaiMetrics.RecordTokens(ctx, c.model, usage.PromptTokens, usage.CompletionTokens)
		}
	}

	if len(response.Candidates) == 0 {
		return "", usage, errors.New("no candidates in Gemini response")
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", usage, errors.New("no content in Gemini response")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		if part.Text != "" {
			text = part.Text
		}
	}
	if text == "" {
		return "", usage, errors.New("no text content in Gemini response")
	}

	return text, usage, nil
}

// ptr is a helper function to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
