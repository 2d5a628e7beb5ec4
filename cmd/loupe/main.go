/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// loupe reviews the source files of a git repository with a hosted model and
// prints the findings grouped by severity, linked back to the commits and
// pull requests that last touched them.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/loupe/clonemanager"
	"chainguard.dev/loupe/config"
	"chainguard.dev/loupe/pipeline"
	"chainguard.dev/loupe/report"
	"chainguard.dev/loupe/review"
	"chainguard.dev/loupe/reviewer"
	"chainguard.dev/loupe/reviewer/azurereviewer"
	"chainguard.dev/loupe/reviewer/claudereviewer"
	"chainguard.dev/loupe/reviewer/googlereviewer"
	"github.com/chainguard-dev/clog"
	"github.com/charmbracelet/huh"
	"github.com/sethvargo/go-envconfig"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

type flags struct {
	repo     string
	backend  string
	workers  int
	config   string
	username string
	token    string
	all      bool
	logLevel string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	f := &flags{}
	cmd := &cli.Command{
		Name:  "loupe",
		Usage: "Review every file of a git repository with a hosted model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "repository URL to review (prompted for when omitted)",
				Destination: &f.repo,
			},
			&cli.StringFlag{
				Name:        "backend",
				Usage:       "model backend: azure, claude or gemini",
				Sources:     cli.EnvVars("LOUPE_BACKEND"),
				Value:       string(config.DefaultBackend),
				Destination: &f.backend,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "number of files reviewed concurrently (overrides the settings file)",
				Destination: &f.workers,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to a YAML settings file",
				Sources:     cli.EnvVars("LOUPE_CONFIG"),
				Destination: &f.config,
			},
			&cli.StringFlag{
				Name:        "username",
				Usage:       "git username for private repositories",
				Sources:     cli.EnvVars("LOUPE_GIT_USERNAME"),
				Destination: &f.username,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "git access token for private repositories",
				Sources:     cli.EnvVars("LOUPE_GIT_TOKEN"),
				Destination: &f.token,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "review every discovered file without prompting",
				Destination: &f.all,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level: debug, info, warn or error",
				Sources:     cli.EnvVars("LOUPE_LOG_LEVEL"),
				Value:       "warn",
				Destination: &f.logLevel,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			var level slog.Level
			if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
				return ctx, fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
			}
			log := clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return clog.WithLogger(ctx, log), nil
		},
		Action: f.run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return
		}
		clog.FatalContextf(ctx, "%v", err)
	}
}

func (f *flags) run(ctx context.Context, _ *cli.Command) error {
	log := clog.FromContext(ctx)

	backend, err := config.ParseBackend(f.backend)
	if err != nil {
		return err
	}
	settings, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.workers > 0 {
		settings.Workers = f.workers
	}

	repoURL, username, token := f.repo, f.username, f.token
	if repoURL == "" {
		repoURL, username, token, err = promptRepository(username, token)
		if err != nil {
			return err
		}
	}

	// Resolve provider configuration before touching the network so a
	// missing key fails fast.
	rev, err := buildReviewer(ctx, backend, settings)
	if err != nil {
		return err
	}

	mgrOpts := []clonemanager.Option{clonemanager.WithMaxFileSize(settings.MaxFileSize)}
	if len(settings.Extensions) > 0 {
		mgrOpts = append(mgrOpts, clonemanager.WithExtensions(settings.Extensions))
	}
	if token != "" {
		mgrOpts = append(mgrOpts, clonemanager.WithCredentials(username,
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))
	}
	mgr, err := clonemanager.New(repoURL, mgrOpts...)
	if err != nil {
		return err
	}

	fmt.Println("Cloning repository...")
	if err := mgr.Clone(ctx); err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}
	defer func() {
		if err := mgr.Discard(); err != nil {
			log.With("error", err.Error()).Warn("Cleaning up clone failed")
		}
	}()

	fmt.Println("Finding code files...")
	files, err := mgr.SourceFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate code files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("No code files found in the repository.")
		return nil
	}
	fmt.Printf("Found %d code files\n", len(files))

	renderer := report.NewRenderer(os.Stdout)
	infos := commitInfos(ctx, mgr, files)
	if f.all {
		renderer.FileListing(files, infos)
	} else {
		files, err = promptFiles(files, infos)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No files selected.")
			return nil
		}
	}

	coord, err := pipeline.New(mgr, rev,
		pipeline.WithWorkers(settings.Workers),
		pipeline.WithChunkSize(settings.ChunkSize),
		pipeline.WithBackendLabel(string(backend)),
		pipeline.WithProgress(renderer.Progress),
	)
	if err != nil {
		return err
	}

	fmt.Printf("\nStarting parallel review of %d files...\n", len(files))
	results := coord.ReviewAll(ctx, files)

	for _, result := range results {
		renderer.FileHeader(result)
		renderer.Issues(result)
	}
	renderer.Summary(results)

	fmt.Println("\nRepository review completed!")
	return nil
}

// buildReviewer resolves the environment configuration for the chosen
// backend and wraps its client in a Reviewer. Only the selected backend's
// variables are read.
func buildReviewer(ctx context.Context, backend config.Backend, settings config.Settings) (*reviewer.Reviewer, error) {
	var completer reviewer.Completer
	switch backend {
	case config.BackendAzure:
		var pc config.Azure
		if err := envconfig.Process(ctx, &pc); err != nil {
			return nil, fmt.Errorf("processing %s config: %w", backend, err)
		}
		c, err := azurereviewer.New(pc.Endpoint, pc.APIKey, pc.Deployment,
			azurereviewer.WithAPIVersion(pc.APIVersion),
			azurereviewer.WithMaxTokens(settings.MaxTokens),
			azurereviewer.WithTemperature(settings.Temperature))
		if err != nil {
			return nil, err
		}
		completer = c

	case config.BackendClaude:
		var pc config.Claude
		if err := envconfig.Process(ctx, &pc); err != nil {
			return nil, fmt.Errorf("processing %s config: %w", backend, err)
		}
		c, err := claudereviewer.New(pc.APIKey,
			claudereviewer.WithModel(pc.Model),
			claudereviewer.WithMaxTokens(settings.MaxTokens),
			claudereviewer.WithTemperature(settings.Temperature))
		if err != nil {
			return nil, err
		}
		completer = c

	case config.BackendGemini:
		var pc config.Gemini
		if err := envconfig.Process(ctx, &pc); err != nil {
			return nil, fmt.Errorf("processing %s config: %w", backend, err)
		}
		c, err := googlereviewer.New(ctx, pc.APIKey,
			googlereviewer.WithModel(pc.Model),
			googlereviewer.WithMaxOutputTokens(int32(settings.MaxTokens)),
			googlereviewer.WithTemperature(float32(settings.Temperature)))
		if err != nil {
			return nil, err
		}
		completer = c
	}

	return reviewer.New(completer)
}

// commitInfos collects the per-file commit metadata shown in listings and
// the file picker. Lookup failures degrade to zero values so rendering can
// proceed.
func commitInfos(ctx context.Context, mgr *clonemanager.Manager, files []clonemanager.File) []review.CommitInfo {
	log := clog.FromContext(ctx)

	infos := make([]review.CommitInfo, len(files))
	for i, file := range files {
		info, err := mgr.CommitInfo(ctx, file.RelPath)
		if err != nil {
			log.With("file", file.RelPath).
				With("error", err.Error()).
				Debug("Commit lookup failed")
			continue
		}
		infos[i] = info
	}
	return infos
}
