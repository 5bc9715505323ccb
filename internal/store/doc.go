// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists analyzed runs to a local SQLite database so
// past benchmark comparisons can be listed and re-inspected without the
// original results document.
package store
