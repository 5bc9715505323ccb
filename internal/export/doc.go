// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders analysis reports to files: JSON for machines,
// Markdown and HTML for humans, CSV for spreadsheets. All exporters
// implement one interface and share a converted ReportData view.
package export
