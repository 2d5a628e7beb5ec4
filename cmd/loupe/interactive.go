/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/review"
	"github.com/charmbracelet/huh"
)

// repoKind is the repository menu choice. The kind only decides whether
// credentials are collected; provider handling keys off the URL downstream.
type repoKind int

const (
	githubPublic repoKind = iota
	githubPrivate
	azurePublic
	azurePrivate
)

func (k repoKind) private() bool {
	return k == githubPrivate || k == azurePrivate
}

// promptRepository collects the repository URL and, for private kinds, any
// credentials the flags did not provide.
func promptRepository(username, token string) (string, string, string, error) {
	var kind repoKind
	var repoURL string

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[repoKind]().
			Title("Repository type").
			Options(
				huh.NewOption("GitHub Public", githubPublic),
				huh.NewOption("GitHub Private", githubPrivate),
				huh.NewOption("Azure DevOps Public", azurePublic),
				huh.NewOption("Azure DevOps Private", azurePrivate),
			).
			Value(&kind),
		huh.NewInput().
			Title("Repository URL").
			Placeholder("https://github.com/org/repo").
			Validate(validateRepoURL).
			Value(&repoURL),
	)).Run(); err != nil {
		return "", "", "", err
	}

	if kind.private() && token == "" {
		var err error
		username, token, err = promptCredentials(username)
		if err != nil {
			return "", "", "", err
		}
	}

	return strings.TrimSpace(repoURL), username, token, nil
}

// promptCredentials asks for the username and access token used to clone a
// private repository. The token input is masked.
func promptCredentials(username string) (string, string, error) {
	var token string

	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Git username").
			Value(&username))
	}
	fields = append(fields, huh.NewInput().
		Title("Access token").
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("token is required for private repositories")
			}
			return nil
		}).
		Value(&token))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(username), strings.TrimSpace(token), nil
}

// promptFiles asks which of the discovered files to review.
func promptFiles(files []clonemanager.File, infos []review.CommitInfo) ([]clonemanager.File, error) {
	options := make([]huh.Option[int], len(files))
	for i, file := range files {
		label := file.RelPath
		if infos[i].Committer != "" {
			label = fmt.Sprintf("%s  (%s, %.8s)", file.RelPath, infos[i].Committer, infos[i].Hash)
		}
		options[i] = huh.NewOption(label, i)
	}

	var picked []int
	if err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title("Files to review").
			Options(options...).
			Filterable(true).
			Height(15).
			Value(&picked),
	)).Run(); err != nil {
		return nil, err
	}

	sort.Ints(picked)
	selected := make([]clonemanager.File, 0, len(picked))
	for _, idx := range picked {
		selected = append(selected, files[idx])
	}
	return selected, nil
}

func validateRepoURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a valid URL")
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return errors.New("URL must start with http:// or https://")
	case u.Host == "":
		return errors.New("URL must include a host")
	}
	return nil
}
