/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"fmt"
	"strings"
)

// Backend identifies the hosted model provider serving review requests.
type Backend string

const (
	BackendAzure  Backend = "azure"
	BackendClaude Backend = "claude"
	BackendGemini Backend = "gemini"
)

// DefaultBackend is used when no backend is requested.
const DefaultBackend = BackendAzure

// ParseBackend maps a user-supplied backend name to its canonical value.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendAzure:
		return BackendAzure, nil
	case BackendClaude:
		return BackendClaude, nil
	case BackendGemini:
		return BackendGemini, nil
	default:
		return "", fmt.Errorf("unknown backend %q, expected one of azure, claude or gemini", s)
	}
}
