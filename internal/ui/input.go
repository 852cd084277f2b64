package ui

import (
	"unicode"

	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		events.App.Stop("interrupt")
		return tea.Quit
	}
	if m.overlay.Open() {
		return m.handleOpenKey(keyMsg)
	}
	return m.handleClosedKey(keyMsg)
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleJumpInput(msg) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.toggleMenu()
	case key.Matches(msg, m.keys.Close):
		if m.panel.Query != "" {
			m.panel.ClearQuery()
			return nil
		}
		m.overlay.Close()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.panel.MoveCursorUp)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.panel.MoveCursorDown)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(m.panel.MoveCursorHome)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(m.panel.MoveCursorEnd)
	case key.Matches(msg, m.keys.Activate):
		return m.activateCurrent()
	case key.Matches(msg, m.keys.Theme):
		return m.execute(menu.ActionTheme, "Theme", "")
	}
	return nil
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		events.App.Stop("quit")
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.toggleMenu()
	case key.Matches(msg, m.keys.Back):
		m.back()
	case key.Matches(msg, m.keys.Theme):
		return m.execute(menu.ActionTheme, "Theme", "")
	case key.Matches(msg, m.keys.Activate):
		if m.router.Current() == menu.AuthPath && !m.session.SignedIn {
			return m.signIn()
		}
	}
	return nil
}

// handleJumpInput feeds printable runes and backspace to the type-to-jump
// query while the panel is open.
func (m *Model) handleJumpInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		if !m.panel.TrimQuery() {
			return false
		}
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		if m.panel.AppendQuery(string(msg.Runes)) {
			if e, ok := m.panel.Current(); ok {
				events.UI.Jump(m.panel.Query, e.Label)
			}
		}
		return true
	}
	return false
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonLeft:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		return m.handlePress(mouse.X, mouse.Y)
	case tea.MouseButtonWheelUp:
		if m.overlay.Open() {
			m.moveCursor(m.panel.MoveCursorUp)
		}
	case tea.MouseButtonWheelDown:
		if m.overlay.Open() {
			m.moveCursor(m.panel.MoveCursorDown)
		}
	}
	return nil
}

// handlePress routes a pointer press: subscribers first (click-away), then
// the toggle control, then panel rows.
func (m *Model) handlePress(x, y int) tea.Cmd {
	m.hub.Dispatch(x, y)
	lay := m.layout()
	if lay.toggle.Contains(x, y) {
		m.toggleMenu()
		return nil
	}
	if !m.entryInteractive() {
		return nil
	}
	idx := lay.entryAt(x, y, m.panel.ViewportOffset, len(m.panel.Entries))
	if idx < 0 {
		return nil
	}
	m.panel.Select(idx)
	return m.activateCurrent()
}
