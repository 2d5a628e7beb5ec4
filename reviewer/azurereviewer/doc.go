/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package azurereviewer implements the review completion surface against an
// Azure OpenAI deployment.
//
// Requests go through the chat completions API with a JSON object response
// format, so the deployment answers with a bare JSON body the reviewer can
// parse directly. Transient failures are retried with exponential backoff
// and token usage is recorded through the shared GenAI metrics.
//
// # Basic Usage
//
//	client, err := azurereviewer.New(endpoint, apiKey, deployment,
//	    azurereviewer.WithAPIVersion("2024-02-15-preview"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rev, err := reviewer.New(client)
//
// # Options
//
//   - WithAPIVersion: override the Azure API version (defaults to 2024-02-15-preview)
//   - WithMaxTokens: cap response tokens (defaults to 2000, max 32000)
//   - WithTemperature: set sampling temperature (defaults to 0.3)
//   - WithRetryConfig: tune the transient-failure backoff
//   - WithAttributeEnricher: add deployment attributes to recorded metrics
package azurereviewer
