// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages jostle-bench configuration: a TOML file under
// ~/.jostle-bench/ with environment-variable overrides. Precedence is
// defaults, then file, then environment.
package config
