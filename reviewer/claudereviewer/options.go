/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudereviewer

import (
	"fmt"
	"strings"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/reviewer/retry"
)

// Option configures the Claude client.
type Option func(*Client) error

// WithModel sets the Claude model to use.
func WithModel(model string) Option {
	return func(c *Client) error {
		if model == "" {
			return fmt.Errorf("model cannot be empty")
		}
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("invalid Claude model: %s", model)
		}
		c.model = model
		return nil
	}
}

// WithMaxTokens sets the completion token ceiling.
func WithMaxTokens(maxTokens int64) Option {
	return func(c *Client) error {
		if maxTokens <= 0 {
			return fmt.Errorf("maxTokens must be positive, got %d", maxTokens)
		}
		if maxTokens > 32000 {
			return fmt.Errorf("maxTokens cannot exceed 32000, got %d", maxTokens)
		}
		c.maxTokens = maxTokens
		return nil
	}
}

// WithTemperature sets the sampling temperature (0.0 to 1.0).
func WithTemperature(temperature float64) Option {
	return func(c *Client) error {
		if temperature < 0.0 || temperature > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temperature)
		}
		c.temperature = temperature
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
