/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package azurereviewer

import (
	"errors"

	"github.com/openai/openai-go"
)

// isRetryableAzureError checks if an error is a retryable Azure OpenAI
// API error. Returns true for timeout, rate limit, and transient server
// errors.
func isRetryableAzureError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 408, 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}
