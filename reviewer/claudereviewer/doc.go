/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudereviewer implements the review completion surface against
// the Anthropic Messages API.
//
// The client sends one system+user exchange per review chunk, retries
// transient API failures with exponential backoff, and records token usage
// through the shared GenAI metrics.
//
// # Basic Usage
//
//	client, err := claudereviewer.New(apiKey,
//	    claudereviewer.WithModel("claude-opus-4-1"),
//	    claudereviewer.WithMaxTokens(4000),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rev, err := reviewer.New(client)
//
// # Options
//
//   - WithModel: override the default model (defaults to claude-sonnet-4-5)
//   - WithMaxTokens: cap response tokens (defaults to 2000, max 32000)
//   - WithTemperature: set sampling temperature (defaults to 0.3)
//   - WithRetryConfig: tune the transient-failure backoff
//   - WithAttributeEnricher: add deployment attributes to recorded metrics
package claudereviewer
