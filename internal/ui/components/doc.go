// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds the individual panes of the browser: the
// hierarchy tree, the comparison table, the detail pane, and the
// header, status bar and help overlay chrome. Components keep their
// own state and render to strings; the browse model owns the key
// routing.
package components
