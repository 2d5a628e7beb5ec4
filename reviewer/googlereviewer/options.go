/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlereviewer

import (
	"fmt"
	"strings"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/reviewer/retry"
	"google.golang.org/genai"
)

// Option configures the Gemini client.
type Option func(*Client) error

// WithModel sets the Gemini model to use.
func WithModel(model string) Option {
	return func(c *Client) error {
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		c.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature.
// Gemini models support temperature values from 0.0 to 2.0
func WithTemperature(temperature float32) Option {
	return func(c *Client) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		c.temperature = temperature
		return nil
	}
}

// WithMaxOutputTokens sets the maximum output tokens for generation.
func WithMaxOutputTokens(tokens int32) Option {
	return func(c *Client) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		if tokens > 32768 {
			return fmt.Errorf("max output tokens %d exceeds maximum of 32768", tokens)
		}
		c.maxTokens = tokens
		return nil
	}
}

// WithResponseSchema overrides the schema used for structured output.
// Passing nil disables the schema constraint and relies on the prompt alone.
func WithResponseSchema(schema *genai.Schema) Option {
	return func(c *Client) error {
		c.responseSchema = schema
		return nil
	}
}

// WithRetryConfig overrides the default retry behavior.
func WithRetryConfig(config retry.Config) Option {
	return func(c *Client) error {
		if err := config.Validate(); err != nil {
			return fmt.Errorf("invalid retry config: %w", err)
		}
		c.retryConfig = config
		return nil
	}
}

// WithAttributeEnricher adds contextual attributes to emitted metrics.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(c *Client) error {
		c.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}
