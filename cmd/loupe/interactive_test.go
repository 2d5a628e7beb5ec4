/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import "testing"

func TestValidateRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{{
		name:  "github https",
		input: "https://github.com/acme/widgets",
	}, {
		name:  "azure devops",
		input: "https://dev.azure.com/org/project/_git/repo",
	}, {
		name:  "plain http",
		input: "http://git.internal/repo.git",
	}, {
		name:  "surrounding whitespace",
		input: "  https://github.com/acme/widgets  ",
	}, {
		name:    "ssh form",
		input:   "git@github.com:acme/widgets.git",
		wantErr: true,
	}, {
		name:    "unsupported scheme",
		input:   "ftp://github.com/acme/widgets",
		wantErr: true,
	}, {
		name:    "missing host",
		input:   "https://",
		wantErr: true,
	}, {
		name:    "bare word",
		input:   "widgets",
		wantErr: true,
	}, {
		name:    "empty",
		input:   "",
		wantErr: true,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateRepoURL(test.input)
			if gotErr := err != nil; gotErr != test.wantErr {
				t.Errorf("validateRepoURL(%q) = %v, wanted error = %t", test.input, err, test.wantErr)
			}
		})
	}
}
