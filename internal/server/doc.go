// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server exposes the latest analysis over a read-only JSON API.
// The report behind the handlers can be hot-swapped, which is how watch
// mode pushes re-analyzed data to connected dashboards.
package server
