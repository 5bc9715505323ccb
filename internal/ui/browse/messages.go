// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package browse

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ReloadedMsg carries a freshly analyzed report after a manual reload or
// a watcher update.
type ReloadedMsg struct {
	Report     *analysis.Report
	Source     string
	FromWatch  bool
	ReloadedAt time.Time
}

// ReloadErrorMsg reports a failed reload. The previous report stays
// on screen.
type ReloadErrorMsg struct {
	Err error
}

// ExportedMsg reports a finished export with the written path.
type ExportedMsg struct {
	Path string
}

// ExportErrorMsg reports a failed export.
type ExportErrorMsg struct {
	Err error
}

// watchClosedMsg signals that the watcher channel closed.
type watchClosedMsg struct{}

// clearStatusMsg expires a transient status message.
type clearStatusMsg struct{ seq int }

// =============================================================================
// COMMANDS
// =============================================================================

// reloadCmd loads and analyzes the source off the UI goroutine.
func reloadCmd(source string, comparator *analysis.Comparator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		coll, err := results.Load(ctx, source)
		if err != nil {
			return ReloadErrorMsg{Err: err}
		}
		report := analysis.AnalyzeWith(coll.Records, comparator)
		return ReloadedMsg{Report: report, Source: coll.Source, ReloadedAt: time.Now()}
	}
}

// waitForWatch blocks on the watcher channels and converts the next
// event into a message. Re-issued after every delivery.
func waitForWatch(w *results.Watcher, comparator *analysis.Comparator) tea.Cmd {
	return func() tea.Msg {
		select {
		case coll, ok := <-w.Collections():
			if !ok {
				return watchClosedMsg{}
			}
			report := analysis.AnalyzeWith(coll.Records, comparator)
			return ReloadedMsg{
				Report:     report,
				Source:     coll.Source,
				FromWatch:  true,
				ReloadedAt: time.Now(),
			}
		case err := <-w.Errors():
			return ReloadErrorMsg{Err: err}
		}
	}
}

// clearStatusCmd expires the status line after a short delay. The
// sequence number keeps a stale timer from clearing a newer message.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
