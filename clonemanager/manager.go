/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"chainguard.dev/loupe/gitprovider"
	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
	"golang.org/x/oauth2"
)

const cloneDirPrefix = "loupe-clone-"

// DefaultMaxFileSize is the per-file size cap applied when no override is
// configured.
const DefaultMaxFileSize = 1_000_000

// DefaultExtensions is the file extension allow-list applied when no override
// is configured.
var DefaultExtensions = []string{
	".py", ".js", ".java", ".cpp", ".cs", ".rb", ".go", ".ts",
	".swift", ".kt", ".rs", ".html", ".css", ".ipynb",
}

// Manager owns a single clone of the configured repository for the duration
// of a review run. Callers must invoke Discard when done, on success and
// failure paths alike.
type Manager struct {
	url         string
	username    string
	tokenSource oauth2.TokenSource
	extensions  map[string]bool
	maxFileSize int64

	// mu serializes access to the repository; go-git repositories are not
	// safe for concurrent use.
	mu   sync.Mutex
	dir  string
	repo *git.Repository
}

// New constructs a Manager for the given repository URL. Credentials, when
// needed, are supplied via WithCredentials and resolved only at clone time.
func New(url string, opts ...Option) (*Manager, error) {
	if url == "" {
		return nil, errors.New("repository url cannot be empty")
	}

	m := &Manager{
		url:         url,
		extensions:  extensionSet(DefaultExtensions),
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return m, nil
}

// Clone checks out the repository into a fresh temp directory. A failed clone
// removes the partial directory before returning.
func (m *Manager) Clone(ctx context.Context) error {
	if m.dir != "" {
		return errors.New("repository already cloned")
	}

	dir, err := os.MkdirTemp("", cloneDirPrefix)
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}

	remote, err := m.remoteURL()
	if err != nil {
		os.RemoveAll(dir)
		return err
	}

	// Log the configured URL, never the remote: the remote may carry
	// embedded credentials.
	clog.FromContext(ctx).Infof("Cloning repository %s into %s", m.url, dir)

	repo, err := git.PlainClone(dir, false, &git.CloneOptions{URL: remote})
	if err != nil {
		os.RemoveAll(dir)
		return fmt.Errorf("cloning repository: %w", err)
	}

	m.dir = dir
	m.repo = repo
	return nil
}

// remoteURL resolves the URL handed to git, embedding freshly resolved token
// material when credentials are configured.
func (m *Manager) remoteURL() (string, error) {
	provider := gitprovider.Detect(m.url)
	if m.tokenSource == nil {
		return provider.CloneURL(m.url, "", ""), nil
	}

	token, err := m.tokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}
	return provider.CloneURL(m.url, m.username, token.AccessToken), nil
}

// Root returns the clone's working directory, or "" before Clone.
func (m *Manager) Root() string {
	return m.dir
}

// Discard removes the temp clone. Object files written by git are read-only,
// so a failed removal gets one chmod-and-retry pass.
func (m *Manager) Discard() error {
	if m.dir == "" {
		return nil
	}

	err := os.RemoveAll(m.dir)
	if err != nil {
		_ = filepath.WalkDir(m.dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}
			_ = os.Chmod(path, 0o700)
			return nil
		})
		err = os.RemoveAll(m.dir)
	}

	m.dir = ""
	m.repo = nil
	return err
}

func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[normalizeExtension(ext)] = true
	}
	return set
}
