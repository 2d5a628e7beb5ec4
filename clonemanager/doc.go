/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package clonemanager owns repository access for a review run. A Manager is
// configured with a repository URL and optional credentials, and exposes the
// operations the pipeline needs:
//   - Clone the repository into a fresh temp directory, embedding freshly
//     resolved token material in the remote URL for private hosts.
//   - Enumerate the source files worth reviewing, filtered by an extension
//     allow-list and a per-file size cap.
//   - Report the most recent commit touching a given file, with the pull
//     request number extracted from its message when one is named.
//
// Callers clone once per run, fan file paths out to review workers, and
// Discard the clone when the run ends, on success and failure paths alike.
package clonemanager
