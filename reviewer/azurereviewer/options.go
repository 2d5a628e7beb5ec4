/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package azurereviewer

import (
	"errors"
	"fmt"

	"chainguard.dev/loupe/metrics"
	"chainguard.dev/loupe/reviewer/retry"
)

// Option is a functional option for configuring the client.
type Option func(*Client) error

// WithAPIVersion overrides the Azure OpenAI API version.
func WithAPIVersion(version string) Option {
	return func(c *Client) error {
		if version == "" {
			return errors.New("api version cannot be empty")
		}
		c.apiVersion = version
		return nil
	}
}

// WithMaxTokens sets the maximum tokens for responses.
func WithMaxTokens(tokens int64) Option {
	return func(c *Client) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		c.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature. Azure OpenAI accepts
// values from 0.0 to 2.0; lower values favor consistent reviews.
func WithTemperature(temp float64) Option {
	return func(c *Client) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		c.temperature = temp
		return nil
	}
}

// WithRetryConfig sets the retry configuration for handling transient
// Azure OpenAI errors. If not set, a default configuration is used.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.retryConfig = cfg
		return nil
	}
}

// WithAttributeEnricher sets a custom attribute enricher for metrics.
// If not provided, metrics only include the base model attribute.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(c *Client) error {
		c.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}
