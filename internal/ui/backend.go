package ui

import (
	"fmt"

	"github.com/atomicstack/staggered-menu/internal/backend"
	"github.com/atomicstack/staggered-menu/internal/logging"
	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
	"github.com/atomicstack/staggered-menu/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent applies a reloaded menu file. A closed overlay is
// remounted so colours, labels and position take effect; an open one only
// picks up the new item list.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		events.Config.ReloadError(evt.Path, evt.Err)
		m.errMsg = fmt.Sprintf("reload failed: %v", evt.Err)
		return
	}
	doc, ok := evt.Data.(menu.Document)
	if !ok {
		return
	}
	m.opts = m.opts.WithDocument(doc)
	m.styles = theme.New(m.dark, m.opts.AccentColor)
	m.refreshVisible()
	if m.overlay.Phase() == overlay.PhaseClosed && !m.overlay.Busy() {
		m.mountOverlay()
	} else {
		m.overlay.SetItemCount(len(m.visible))
	}
	events.Config.Reload(evt.Path, len(m.opts.Items))
	m.errMsg = ""
	m.setInfo("Menu reloaded")
}
