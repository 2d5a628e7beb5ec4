/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

import "testing"

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Backend
		wantErr bool
	}{{
		name:  "azure",
		input: "azure",
		want:  BackendAzure,
	}, {
		name:  "upper case",
		input: "AZURE",
		want:  BackendAzure,
	}, {
		name:  "surrounding whitespace",
		input: " claude ",
		want:  BackendClaude,
	}, {
		name:  "gemini",
		input: "gemini",
		want:  BackendGemini,
	}, {
		name:    "empty",
		input:   "",
		wantErr: true,
	}, {
		name:    "unknown",
		input:   "openai",
		wantErr: true,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseBackend(test.input)
			if gotErr := err != nil; gotErr != test.wantErr {
				t.Fatalf("ParseBackend(%q) = %v, wanted error = %t", test.input, err, test.wantErr)
			}
			if got != test.want {
				t.Errorf("ParseBackend(%q) = %q, wanted = %q", test.input, got, test.want)
			}
		})
	}
}
