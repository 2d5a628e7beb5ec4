/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package gitprovider classifies repository URLs by hosting service and owns
// the per-provider URL formatting: credential-embedded clone URLs and pull
// request web links. Call sites hold a Provider instead of string-matching
// URLs themselves.
package gitprovider

import (
	"fmt"
	"net/url"
	"strings"
)

// Provider identifies the hosting service behind a repository URL.
type Provider int

const (
	Unknown Provider = iota
	GitHub
	// AzureDevOps covers modern dev.azure.com URLs.
	AzureDevOps
	// AzureDevOpsLegacy covers {org}.visualstudio.com URLs.
	AzureDevOpsLegacy
)

func (p Provider) String() string {
	switch p {
	case GitHub:
		return "github"
	case AzureDevOps:
		return "azure-devops"
	case AzureDevOpsLegacy:
		return "azure-devops-legacy"
	default:
		return "unknown"
	}
}

// Detect classifies a repository URL by its host.
func Detect(rawURL string) Provider {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lower, "dev.azure.com"):
		return AzureDevOps
	case strings.Contains(lower, "visualstudio.com"):
		return AzureDevOpsLegacy
	case strings.Contains(lower, "github.com"):
		return GitHub
	default:
		return Unknown
	}
}

// CloneURL builds the URL handed to git for cloning. A ".git" suffix is
// appended when missing. When both credentials are supplied they are
// percent-encoded into the URL's userinfo per the provider's scheme. Unknown
// providers pass the URL through untouched, which keeps local paths working.
func (p Provider) CloneURL(rawURL, username, password string) string {
	if p == Unknown {
		return rawURL
	}
	if !strings.HasSuffix(rawURL, ".git") {
		rawURL += ".git"
	}
	if username == "" || password == "" {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	segments := pathSegments(u)

	switch p {
	case AzureDevOps:
		// {org}/{project}/.../{repo} becomes {org}/{project}/_git/{repo}.
		if len(segments) < 2 {
			return rawURL
		}
		org, project := segments[0], segments[1]
		repo := strings.TrimSuffix(segments[len(segments)-1], ".git")
		return fmt.Sprintf("https://%s@dev.azure.com/%s/%s/_git/%s",
			url.UserPassword(username, password), org, project, repo)
	case AzureDevOpsLegacy:
		org, _, _ := strings.Cut(u.Hostname(), ".")
		if len(segments) < 1 {
			return rawURL
		}
		project := segments[0]
		repo := strings.TrimSuffix(segments[len(segments)-1], ".git")
		return fmt.Sprintf("https://%s@%s.visualstudio.com/%s/_git/%s",
			url.UserPassword(username, password), org, project, repo)
	default: // GitHub
		u.User = url.UserPassword(username, password)
		return u.String()
	}
}

// PullRequestURL derives the web URL for a pull request number. Providers
// without a known link scheme yield an empty string.
func (p Provider) PullRequestURL(rawURL, number string) string {
	if number == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := pathSegments(u)

	switch p {
	case GitHub:
		if len(segments) < 2 {
			return ""
		}
		org := segments[0]
		repo := strings.TrimSuffix(segments[1], ".git")
		return fmt.Sprintf("https://github.com/%s/%s/pull/%s", org, repo, number)
	case AzureDevOps:
		if len(segments) < 2 {
			return ""
		}
		return fmt.Sprintf("https://dev.azure.com/%s/%s/_git/pullrequest/%s", segments[0], segments[1], number)
	default:
		return ""
	}
}

func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.Path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
