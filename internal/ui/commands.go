package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/staggered-menu/internal/logging"
	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const infoTTL = 3 * time.Second

// execute runs a registered action through the command bus.
func (m *Model) execute(id, label, target string) tea.Cmd {
	node, ok := m.registry.Find(id)
	if !ok {
		err := fmt.Errorf("unknown action %q", id)
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	return m.bus.Execute(m.menuContext(), command.Request{
		ID:      id,
		Label:   label,
		Handler: node.Action,
		Target:  target,
	})
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Session:     m.session,
		CurrentPath: m.router.Current(),
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.opts.Verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
		return ""
	}
	return m.infoMsg
}
