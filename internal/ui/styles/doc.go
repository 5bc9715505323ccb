// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the jostle-bench
// TUI. Colors use Lip Gloss adaptive colors so the same theme works on
// light and dark terminals.
package styles
