/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlereviewer

import (
	"context"
	"testing"

	"chainguard.dev/loupe/reviewer/retry"
	"google.golang.org/genai"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr bool
	}{{
		name:   "valid minimal",
		apiKey: "test-key",
	}, {
		name:    "empty api key",
		apiKey:  "",
		wantErr: true,
	}, {
		name:   "valid model override",
		apiKey: "test-key",
		opts:   []Option{WithModel("gemini-2.0-flash")},
	}, {
		name:    "non-gemini model",
		apiKey:  "test-key",
		opts:    []Option{WithModel("gpt-4o")},
		wantErr: true,
	}, {
		name:    "zero max output tokens",
		apiKey:  "test-key",
		opts:    []Option{WithMaxOutputTokens(0)},
		wantErr: true,
	}, {
		name:    "max output tokens over ceiling",
		apiKey:  "test-key",
		opts:    []Option{WithMaxOutputTokens(65536)},
		wantErr: true,
	}, {
		name:    "temperature too high",
		apiKey:  "test-key",
		opts:    []Option{WithTemperature(2.5)},
		wantErr: true,
	}, {
		name:   "valid temperature",
		apiKey: "test-key",
		opts:   []Option{WithTemperature(1.0)},
	}, {
		name:    "invalid retry config",
		apiKey:  "test-key",
		opts:    []Option{WithRetryConfig(retry.Config{MaxRetries: -1})},
		wantErr: true,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(context.Background(), tc.apiKey, tc.opts...)
			if (err != nil) != tc.wantErr {
				t.Errorf("New() error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q, wanted = %q", c.model, DefaultModel)
	}
	if c.maxTokens != 2000 {
		t.Errorf("maxTokens = %d, wanted = 2000", c.maxTokens)
	}
	if c.temperature != 0.3 {
		t.Errorf("temperature = %v, wanted = 0.3", c.temperature)
	}

	if c.responseSchema == nil {
		t.Fatal("responseSchema = nil, wanted review schema")
	}
	if c.responseSchema.Type != genai.TypeObject {
		t.Errorf("responseSchema.Type = %v, wanted = %v", c.responseSchema.Type, genai.TypeObject)
	}
	if _, ok := c.responseSchema.Properties["issues"]; !ok {
		t.Error("responseSchema missing issues property")
	}
}

func TestWithResponseSchemaNil(t *testing.T) {
	c, err := New(context.Background(), "test-key", WithResponseSchema(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.responseSchema != nil {
		t.Errorf("responseSchema = %+v, wanted nil", c.responseSchema)
	}
}
