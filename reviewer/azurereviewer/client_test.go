/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package azurereviewer

import (
	"testing"

	"chainguard.dev/loupe/reviewer/retry"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		apiKey     string
		deployment string
		opts       []Option
		wantErr    bool
	}{{
		name:       "valid",
		endpoint:   "https://example.openai.azure.com",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
	}, {
		name:       "missing endpoint",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
		wantErr:    true,
	}, {
		name:       "missing api key",
		endpoint:   "https://example.openai.azure.com",
		deployment: "gpt-4o-mini",
		wantErr:    true,
	}, {
		name:     "missing deployment",
		endpoint: "https://example.openai.azure.com",
		apiKey:   "key",
		wantErr:  true,
	}, {
		name:       "invalid temperature",
		endpoint:   "https://example.openai.azure.com",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
		opts:       []Option{WithTemperature(3.5)},
		wantErr:    true,
	}, {
		name:       "invalid max tokens",
		endpoint:   "https://example.openai.azure.com",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
		opts:       []Option{WithMaxTokens(0)},
		wantErr:    true,
	}, {
		name:       "empty api version",
		endpoint:   "https://example.openai.azure.com",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
		opts:       []Option{WithAPIVersion("")},
		wantErr:    true,
	}, {
		name:       "invalid retry config",
		endpoint:   "https://example.openai.azure.com",
		apiKey:     "key",
		deployment: "gpt-4o-mini",
		opts:       []Option{WithRetryConfig(retry.Config{MaxRetries: -1})},
		wantErr:    true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.endpoint, tt.apiKey, tt.deployment, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New("https://example.openai.azure.com", "key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.apiVersion != DefaultAPIVersion {
		t.Errorf("apiVersion: got = %q, wanted = %q", c.apiVersion, DefaultAPIVersion)
	}
	if c.maxTokens != 2000 {
		t.Errorf("maxTokens: got = %d, wanted = 2000", c.maxTokens)
	}
	if c.temperature != 0.3 {
		t.Errorf("temperature: got = %v, wanted = 0.3", c.temperature)
	}
}
