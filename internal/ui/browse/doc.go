// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browse implements the interactive benchmark browser: a Bubble
// Tea model composing the tree, table, detail and help components over
// an analyzed report, with live reload from a watched results file.
package browse
