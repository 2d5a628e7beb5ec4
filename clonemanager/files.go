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
	"path/filepath"
	"strings"

	"github.com/chainguard-dev/clog"
)

// File is a reviewable source file inside the clone.
type File struct {
	// RelPath is slash-separated and relative to the clone root.
	RelPath string
	AbsPath string
}

// SourceFiles walks the clone and returns every file matching the extension
// allow-list, in walk order. Anything under .git is skipped, as are files
// over the size cap.
func (m *Manager) SourceFiles(ctx context.Context) ([]File, error) {
	if m.dir == "" {
		return nil, errors.New("repository not cloned")
	}

	log := clog.FromContext(ctx)

	var files []File
	err := filepath.WalkDir(m.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if !m.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > m.maxFileSize {
			log.Debugf("Skipping %s: %d bytes exceeds cap of %d", path, info.Size(), m.maxFileSize)
			return nil
		}

		rel, err := filepath.Rel(m.dir, path)
		if err != nil {
			return err
		}

		files = append(files, File{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking clone: %w", err)
	}

	return files, nil
}
