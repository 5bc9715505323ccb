// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers: atomic file writes,
// width-aware string shaping for table cells, and number/duration
// formatting used by the CLI, exports, and the TUI.
package util
