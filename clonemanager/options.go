/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// Option configures the Manager.
type Option func(*Manager) error

// WithCredentials supplies the username and token source used to authenticate
// the clone. The token is resolved only when Clone runs.
func WithCredentials(username string, tokenSource oauth2.TokenSource) Option {
	return func(m *Manager) error {
		if tokenSource == nil {
			return errors.New("token source cannot be nil")
		}
		m.username = username
		m.tokenSource = tokenSource
		return nil
	}
}

// WithExtensions overrides the file extension allow-list.
func WithExtensions(extensions []string) Option {
	return func(m *Manager) error {
		if len(extensions) == 0 {
			return errors.New("extensions cannot be empty")
		}
		m.extensions = extensionSet(extensions)
		return nil
	}
}

// WithMaxFileSize overrides the per-file size cap in bytes.
func WithMaxFileSize(size int64) Option {
	return func(m *Manager) error {
		if size <= 0 {
			return fmt.Errorf("max file size must be positive, got %d", size)
		}
		m.maxFileSize = size
		return nil
	}
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
