// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/export"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/components"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// focus identifies which pane receives navigation keys.
type focus int

const (
	focusTree focus = iota
	focusTable
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the benchmark browser.
type Model struct {
	theme *styles.Theme
	keys  components.KeyMap

	// Data
	report     *analysis.Report
	source     string
	comparator *analysis.Comparator
	loadedAt   time.Time

	// Mode filter. Empty shows all modes; otherwise the tree and table
	// are rebuilt from the filtered comparison set.
	modeFilter string
	modes      []string

	// Components
	header *components.Header
	tree   *components.TreeView
	table  *components.ComparisonTable
	detail *components.DetailPane
	help   *components.HelpView

	// Pane state
	focused    focus
	showDetail bool

	// Substring filter over comparison labels. filterActive means keys
	// feed the filter text instead of navigation.
	filterActive bool
	filterText   string

	// Live reload
	watcher *results.Watcher

	// Transient status line; statusSeq invalidates stale clear timers.
	statusMsg string
	statusSeq int

	width  int
	height int
}

// New builds the browser over an analyzed report. watcher may be nil;
// when set the model consumes its collections for live reload.
func New(report *analysis.Report, source string, comparator *analysis.Comparator, watcher *results.Watcher) *Model {
	cfg := config.Global()
	theme := styles.NewTheme(cfg.UI.Theme)
	keys := components.DefaultKeyMap()

	m := &Model{
		theme:      theme,
		keys:       keys,
		report:     report,
		source:     source,
		comparator: comparator,
		loadedAt:   time.Now(),
		header:     &components.Header{Source: source},
		tree:       components.NewTreeView(report.Tree),
		table:      components.NewComparisonTable(),
		detail:     components.NewDetailPane(),
		help:       components.NewHelpView(theme, keys),
		watcher:    watcher,
	}
	m.modes = report.Modes()
	m.syncTable()
	return m
}

// Init starts the watcher subscription when live reload is on.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForWatch(m.watcher, m.comparator)
	}
	return nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReloadedMsg:
		return m.handleReloaded(msg)

	case ReloadErrorMsg:
		return m.setStatus(m.theme.StatusWarn.Render("reload failed: " + msg.Err.Error()))

	case ExportedMsg:
		return m.setStatus("exported " + msg.Path)

	case ExportErrorMsg:
		return m.setStatus(m.theme.StatusWarn.Render("export failed: " + msg.Err.Error()))

	case watchClosedMsg:
		m.watcher = nil
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The full help overlay swallows everything except its own toggles.
	if m.help.ShowingAll() {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.help.Toggle()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	if m.filterActive {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// The watcher is stopped by the caller once the program exits.
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		if m.focused == focusTable {
			m.focused = focusTree
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focused == focusTree {
			m.focused = focusTable
		} else {
			m.focused = focusTree
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.showDetail {
			m.detail.ScrollUp()
		} else if m.focused == focusTree {
			m.tree.MoveUp()
			m.syncTable()
		} else {
			m.table.MoveUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.showDetail {
			m.detail.ScrollDown()
		} else if m.focused == focusTree {
			m.tree.MoveDown()
			m.syncTable()
		} else {
			m.table.MoveDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.focused == focusTree {
			m.tree.Collapse()
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.focused == focusTree {
			m.tree.Expand()
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.focused == focusTree {
			m.tree.Toggle()
			m.syncTable()
		} else {
			m.openDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if m.showDetail {
			m.showDetail = false
		} else {
			m.openDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.cycleModeFilter()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		cmd := reloadCmd(m.source, m.comparator)
		model, statusCmd := m.setStatus("reloading " + m.source)
		return model, tea.Batch(cmd, statusCmd)

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	}
	return m, nil
}

// handleFilterKey consumes keystrokes while the filter prompt is open.
// The filter re-applies on every edit so the tree narrows live.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filterActive = false
		m.filterText = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.filterActive = false
	case tea.KeyBackspace:
		if m.filterText != "" {
			runes := []rune(m.filterText)
			m.filterText = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filterText += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m *Model) handleReloaded(msg ReloadedMsg) (tea.Model, tea.Cmd) {
	m.report = msg.Report
	m.source = msg.Source
	m.loadedAt = msg.ReloadedAt
	m.header.Source = msg.Source
	m.modes = msg.Report.Modes()
	if m.modeFilter != "" && !containsMode(m.modes, m.modeFilter) {
		m.modeFilter = ""
	}
	m.applyFilter()

	var cmds []tea.Cmd
	if msg.FromWatch && m.watcher != nil {
		cmds = append(cmds, waitForWatch(m.watcher, m.comparator))
	}
	note := "reloaded"
	if msg.FromWatch {
		note = "results changed, reloaded"
	}
	_, statusCmd := m.setStatus(note)
	cmds = append(cmds, statusCmd)
	return m, tea.Batch(cmds...)
}

// setStatus sets the transient status line and schedules its expiry.
func (m *Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

// =============================================================================
// FILTERING AND SELECTION
// =============================================================================

// cycleModeFilter advances the filter through all -> each mode -> all.
func (m *Model) cycleModeFilter() {
	if len(m.modes) == 0 {
		return
	}
	switch {
	case m.modeFilter == "":
		m.modeFilter = m.modes[0]
	default:
		next := ""
		for i, mode := range m.modes {
			if mode == m.modeFilter && i+1 < len(m.modes) {
				next = m.modes[i+1]
				break
			}
		}
		m.modeFilter = next
	}
	m.applyFilter()
}

// applyFilter rebuilds the tree from the filtered comparison set.
func (m *Model) applyFilter() {
	comps := m.report.Comparisons
	if m.modeFilter != "" {
		comps = analysis.FilterByMode(comps, m.modeFilter)
	}
	if m.filterText != "" {
		needle := strings.ToLower(m.filterText)
		var matched []*analysis.Comparison
		for _, c := range comps {
			if strings.Contains(strings.ToLower(c.Label()), needle) {
				matched = append(matched, c)
			}
		}
		comps = matched
	}
	m.tree.SetTree(analysis.BuildHierarchy(comps))
	m.syncTable()
}

// syncTable points the table at the selected tree node's comparisons.
func (m *Model) syncTable() {
	node := m.tree.Selected()
	if node == nil {
		m.table.SetComparisons(nil)
		return
	}
	m.table.SetComparisons(node.Comparisons)
}

// openDetail shows the detail pane for the table selection.
func (m *Model) openDetail() {
	selected := m.table.Selected()
	if selected == nil {
		return
	}
	m.detail.SetComparison(selected, m.theme)
	m.showDetail = true
}

// exportCmd writes a markdown report to the configured export directory.
func (m *Model) exportCmd() tea.Cmd {
	report := m.report
	source := m.source
	mode := m.modeFilter
	return func() tea.Msg {
		exporter, err := export.New("markdown")
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		data := export.NewReportData(report, source, export.Options{
			Mode:               mode,
			IncludeDiagnostics: true,
		})
		path, err := export.ExportToFile(exporter, data, config.Global().Export.Dir)
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

func containsMode(modes []string, mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// =============================================================================
// VIEW
// =============================================================================

const (
	headerHeight = 1
	statusHeight = 1
	paneChrome   = 4 // border + padding per framed pane
)

// resize distributes the terminal between the panes. The tree takes a
// third of the width, the table or detail the rest.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	body := height - headerHeight - statusHeight
	if body < 3 {
		body = 3
	}
	treeWidth := width / 3
	if treeWidth < 24 {
		treeWidth = 24
	}
	rightWidth := width - treeWidth

	m.tree.SetSize(treeWidth-paneChrome, body-2)
	m.table.SetSize(rightWidth-paneChrome, body-2)
	m.detail.SetSize(rightWidth-paneChrome, body-2)
	m.header.Width = width
	m.help.SetWidth(width)
}

// View renders the full browser frame.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	body := m.height - headerHeight - statusHeight
	if body < 3 {
		body = 3
	}
	treeWidth := m.width / 3
	if treeWidth < 24 {
		treeWidth = 24
	}
	rightWidth := m.width - treeWidth

	treeStyle := m.theme.TreePane
	rightStyle := m.theme.TablePane
	if m.focused == focusTable && !m.showDetail {
		rightStyle = m.theme.TableFocused
	}

	left := treeStyle.
		Width(treeWidth - 2).
		Height(body - 2).
		Render(m.tree.View(m.theme))

	var right string
	if m.showDetail {
		right = m.theme.DetailPane.
			Width(rightWidth - 2).
			Height(body - 2).
			Render(m.detail.View(m.theme))
	} else {
		right = rightStyle.
			Width(rightWidth - 2).
			Height(body - 2).
			Render(m.table.View(m.theme, m.focused == focusTable))
	}

	status := m.statusLine()
	if m.help.ShowingAll() {
		status = m.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.theme),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		status,
	)
}

// statusLine renders the bottom bar with counts and the live message.
func (m *Model) statusLine() string {
	message := m.statusMsg
	switch {
	case m.filterActive:
		message = m.theme.FilterBadge.Render("/" + m.filterText + "▌")
	case m.filterText != "":
		message = m.theme.FilterBadge.Render("/" + m.filterText)
	case message == "" && m.watcher != nil:
		message = fmt.Sprintf("watching, loaded %s", m.loadedAt.Format("15:04:05"))
	}
	bar := &components.StatusBar{
		Width:       m.width,
		Diagnostics: &m.report.Diagnostics,
		ModeFilter:  m.modeFilter,
		Message:     message,
	}
	return bar.View(m.theme)
}
