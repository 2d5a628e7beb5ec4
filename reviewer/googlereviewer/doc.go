/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googlereviewer implements the review completion surface against
// the Gemini API.
//
// Responses are requested as JSON and, by default, constrained to the review
// schema through the API's structured output support in addition to the
// schema embedded in the prompt. Transient failures are retried with
// exponential backoff and token usage is recorded through the shared GenAI
// metrics.
//
// # Basic Usage
//
//	client, err := googlereviewer.New(ctx, apiKey,
//	    googlereviewer.WithModel("gemini-2.5-pro"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rev, err := reviewer.New(client)
//
// # Options
//
//   - WithModel: override the default model (defaults to gemini-2.5-flash)
//   - WithTemperature: set sampling temperature (defaults to 0.3, max 2.0)
//   - WithMaxOutputTokens: cap response tokens (defaults to 2000, max 32768)
//   - WithResponseSchema: replace or disable the structured output schema
//   - WithRetryConfig: tune the transient-failure backoff
//   - WithAttributeEnricher: add deployment attributes to recorded metrics
package googlereviewer
