// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the jostle-bench command-line surface: command
// routing, a unified argument parser, styled terminal output and the
// handlers behind every subcommand.
package cli
