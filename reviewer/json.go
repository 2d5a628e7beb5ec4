/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewer

import (
	"bytes"
	"encoding/json"
	"strings"

	"chainguard.dev/loupe/requestbuilder"
)

// extractJSON extracts JSON content from a response that may wrap it in
// markdown code blocks. It looks for content between ```json and ```
// markers, or returns the input trimmed if no markers are found.
func extractJSON(responseText string) string {
	// Search for the first ```json on its own line and collect content
	// until the closing ```.
	lines := strings.Split(responseText, "\n")
	var jsonBuffer bytes.Buffer
	inJSONBlock := false
	foundJSON := false

	for _, line := range lines {
		if !inJSONBlock && line == "```json" {
			inJSONBlock = true
			foundJSON = true
			continue
		}

		if inJSONBlock && line == "```" {
			break
		}

		if inJSONBlock {
			if jsonBuffer.Len() > 0 {
				jsonBuffer.WriteString("\n")
			}
			jsonBuffer.WriteString(line)
		}
	}

	if foundJSON {
		if jsonBuffer.Len() == 0 {
			// Found a ```json block but it was empty; the caller treats
			// the empty string as a parse failure.
			return ""
		}
		return strings.TrimSpace(jsonBuffer.String())
	}

	// Fallback: models sometimes emit inline fences or stray whitespace.
	responseText = strings.TrimSpace(responseText)

	if strings.HasPrefix(responseText, "```json") && strings.HasSuffix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else {
		// These do nothing if the values aren't there, so always do it.
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	return responseText
}

// parseReview unmarshals the model's consolidated review, unwrapping any
// markdown fencing first.
func parseReview(responseText string) (requestbuilder.Review, error) {
	var rev requestbuilder.Review
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &rev); err != nil {
		return rev, err
	}
	return rev, nil
}
