/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package config carries the run settings and the per-provider environment
// contracts for the review pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/pipeline"
	"chainguard.dev/loupe/requestbuilder"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.3
)

// Settings are the tunable knobs of a review run. Omitted keys keep their
// defaults; keys set to unusable values are rejected by Validate.
type Settings struct {
	// Workers bounds the number of files reviewed concurrently.
	Workers int `yaml:"workers"`
	// MaxFileSize is the per-file byte cap applied during enumeration.
	MaxFileSize int64 `yaml:"max_file_size"`
	// ChunkSize is the largest number of lines sent in a single request.
	ChunkSize int `yaml:"chunk_size"`
	// MaxTokens caps the model output per request.
	MaxTokens int64 `yaml:"max_tokens"`
	// Temperature is the model sampling temperature.
	Temperature float64 `yaml:"temperature"`
	// Extensions overrides the file extension allow-list when non-empty.
	Extensions []string `yaml:"extensions"`
}

// Defaults returns the settings used when no file is supplied.
func Defaults() Settings {
	return Settings{
		Workers:     pipeline.DefaultWorkers,
		MaxFileSize: clonemanager.DefaultMaxFileSize,
		ChunkSize:   requestbuilder.DefaultChunkSize,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}
}

// Load overlays the YAML file at path onto the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the settings for values no run could use.
func (s Settings) Validate() error {
	switch {
	case s.Workers < 1:
		return errors.New("workers must be positive")
	case s.MaxFileSize < 1:
		return errors.New("max_file_size must be positive")
	case s.ChunkSize < 1:
		return errors.New("chunk_size must be positive")
	case s.MaxTokens < 1:
		return errors.New("max_tokens must be positive")
	case s.Temperature < 0 || s.Temperature > 2:
		return errors.New("temperature must be between 0.0 and 2.0")
	}
	for _, ext := range s.Extensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New("extensions cannot contain empty entries")
		}
	}
	return nil
}
