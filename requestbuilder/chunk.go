/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package requestbuilder

import "strings"

// DefaultChunkSize bounds how many bytes of a file go into one request.
const DefaultChunkSize = 2000

// Chunk is a line-bounded piece of a source file.
type Chunk struct {
	// Text is the chunk body without a trailing newline.
	Text string
	// StartLine is the 1-based line number of the chunk's first line
	// within the original file.
	StartLine int
}

// Split breaks code into chunks of at most maxChunkSize bytes, never
// splitting inside a line. A single line longer than the bound becomes a
// chunk of its own that exceeds it.
func Split(code string, maxChunkSize int) []Chunk {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultChunkSize
	}

	lines := strings.Split(code, "\n")
	var chunks []Chunk
	var current []string
	size := 0
	startLine := 1

	for _, line := range lines {
		if size+len(line) > maxChunkSize && len(current) > 0 {
			chunks = append(chunks, Chunk{
				Text:      strings.Join(current, "\n"),
				StartLine: startLine,
			})
			startLine += len(current)
			current = nil
			size = 0
		}
		current = append(current, line)
		size += len(line)
	}

	if len(current) > 0 {
		chunks = append(chunks, Chunk{
			Text:      strings.Join(current, "\n"),
			StartLine: startLine,
		})
	}

	return chunks
}
