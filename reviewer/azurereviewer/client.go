/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package azurereviewer

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/reviewer"
	"chainguard.dev/loupe/reviewer/retry"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
)

// DefaultAPIVersion is the Azure OpenAI API version used unless overridden.
const DefaultAPIVersion = "2024-02-15-preview"

// Client sends review requests to an Azure OpenAI deployment.
type Client struct {
	oai          openai.Client
	deployment   string
	apiVersion   string
	maxTokens    int64
	temperature  float64
	genaiMetrics *metrics.GenAI
	retryConfig  retry.Config
}

// New connects to an Azure OpenAI deployment.
func New(endpoint, apiKey, deployment string, opts ...Option) (*Client, error) {
	switch {
	case endpoint == "":
		return nil, errors.New("endpoint cannot be empty")
	case apiKey == "":
		return nil, errors.New("api key cannot be empty")
	case deployment == "":
		return nil, errors.New("deployment cannot be empty")
	}

	c := &Client{
		deployment:   deployment,
		apiVersion:   DefaultAPIVersion,
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

	c.oai = openai.NewClient(
		azure.WithEndpoint(endpoint, c.apiVersion),
		azure.WithAPIKey(apiKey),
	)
	return c, nil
}

// Complete implements reviewer.Completer. The deployment is asked for a
// JSON object response so the reviewer can parse it without unfencing.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, reviewer.Usage, error) {
	log := clog.FromContext(ctx)
	log.With("deployment", c.deployment).
		With("prompt_length", len(prompt)).
		Debug("Sending Azure OpenAI review request")

	completion, err := retry.Do(ctx, c.retryConfig, "chat_completion", isRetryableAzureError, func() (*openai.ChatCompletion, error) {
		return c.oai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(prompt),
			},
			Model:       openai.ChatModel(c.deployment),
			MaxTokens:   openai.Int(c.maxTokens),
			Temperature: openai.Float(c.temperature),
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
			},
		})
	})
	if err != nil {
		return "", reviewer.Usage{}, fmt.Errorf("azure openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", reviewer.Usage{}, errors.New("no choices in Azure OpenAI response")
	}

	usage := reviewer.Usage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
	}
	if usage.PromptTokens > 0 || usage.CompletionTokens > 0 {
		c.genaiMetrics.RecordTokens(ctx, c.deployment, usage.PromptTokens, usage.CompletionTokens)
	}

	return completion.Choices[0].Message.Content, usage, nil
}
