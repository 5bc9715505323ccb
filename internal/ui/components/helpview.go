// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
)

// KeyMap defines every binding of the browser. Grouped so the help
// bubble can render the short and full variants.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Tab      key.Binding
	Mode     key.Binding
	Filter   key.Binding
	Detail   key.Binding
	Reload   key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

// DefaultKeyMap returns the browser bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle node")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cycle mode filter")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Detail: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "detail")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Tab, k.Mode, k.Detail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.Tab, k.Mode, k.Filter, k.Detail},
		{k.Reload, k.Export, k.Help, k.Quit},
	}
}

// HelpView wraps the bubbles help component with the theme's styles.
type HelpView struct {
	help help.Model
	keys KeyMap
}

// NewHelpView builds the help overlay.
func NewHelpView(theme *styles.Theme, keys KeyMap) *HelpView {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	return &HelpView{help: h, keys: keys}
}

// SetWidth sets the render width.
func (h *HelpView) SetWidth(width int) {
	h.help.Width = width
}

// Toggle flips between the one-line and the full help.
func (h *HelpView) Toggle() {
	h.help.ShowAll = !h.help.ShowAll
}

// ShowingAll reports whether the full help is open.
func (h *HelpView) ShowingAll() bool {
	return h.help.ShowAll
}

// View renders the current help variant.
func (h *HelpView) View() string {
	return h.help.View(h.keys)
}
