/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudereviewer

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/reviewer"
	"chainguard.dev/loupe/reviewer/retry"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
)

// DefaultModel is the Claude model used unless overridden.
const DefaultModel = "claude-sonnet-4-5"

// Client sends review requests to the Anthropic API.
type Client struct {
	anthropic    anthropic.Client
	model        string
	maxTokens    int64
	temperature  float64
	genaiMetrics *metrics.GenAI
	retryConfig  retry.Config
}

// New connects to the Anthropic API with the given key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	c := &Client{
		anthropic:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:        DefaultModel,
		maxTokens:    2000,
		temperature:  0.3,
		genaiMetrics: metrics.NewGenAI("chainguard.dev/loupe"),
		retryConfig:  retry.DefaultConfig(),
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
		Debug("Sending Claude review request")

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
		Temperature: anthropic.Float(c.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
	}

	message, err := retry.Do(ctx, c.retryConfig, "message_new", isRetryableClaudeError, func() (*anthropic.Message, error) {
		return c.anthropic.Messages.New(ctx, params)
	})
	if err != nil {
		return "", reviewer.Usage{}, fmt.Errorf("claude message: %w", err)
	}

	usage := reviewer.Usage{
		PromptTokens:     message.Usage.InputTokens,
		CompletionTokens: message.Usage.OutputTokens,
	}
	if usage.PromptTokens > 0 || usage.CompletionTokens > 0 {
		c.genaiMetrics.RecordTokens(ctx, c.model, usage.PromptTokens, usage.CompletionTokens)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
		}
	}
	if text == "" {
		return "", usage, errors.New("no text content in Claude response")
	}

	return text, usage, nil
}
