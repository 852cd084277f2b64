package ui

import (
	"fmt"

	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
	"github.com/atomicstack/staggered-menu/internal/route"
	"github.com/atomicstack/staggered-menu/internal/theme"
	uistate "github.com/atomicstack/staggered-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) refreshVisible() {
	m.visible = menu.Visible(m.opts.Items, m.session)
}

func (m *Model) entries() []uistate.Entry {
	expanded := -1
	if m.overlay != nil {
		if i, ok := m.overlay.Expanded(); ok {
			expanded = i
		}
	}
	return uistate.Flatten(m.visible, expanded, m.session)
}

func (m *Model) syncPanel() {
	m.panel.SetEntries(m.entries())
	if !m.overlay.Open() {
		m.panel.ClearQuery()
	}
	m.panel.EnsureCursorVisible(m.layout().entryRows)
}

func (m *Model) syncBounds() {
	lay := m.layout()
	m.overlay.SetBounds(lay.panelRect(), lay.toggle)
}

func (m *Model) toggleMenu() {
	opening := !m.overlay.Open()
	if !m.overlay.Toggle() || !opening {
		return
	}
	m.panel.ClearQuery()
	m.panel.SetEntries(m.entries())
	m.focusActive()
}

// focusActive places the cursor on the most specific entry matching the
// current path.
func (m *Model) focusActive() {
	best, bestLen := -1, -1
	for i, e := range m.panel.Entries {
		if e.Link == "" || (e.Kind != uistate.KindItem && e.Kind != uistate.KindSubItem) {
			continue
		}
		if m.router.IsActive(e.Link) && len(e.Link) > bestLen {
			best, bestLen = i, len(e.Link)
		}
	}
	if best < 0 {
		m.panel.MoveCursorHome()
		return
	}
	m.panel.Select(best)
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		if e, ok := m.panel.Current(); ok {
			events.UI.Cursor(m.panel.Cursor, e.Label)
		}
	}
}

func (m *Model) activateCurrent() tea.Cmd {
	e, ok := m.panel.Current()
	if !ok {
		return nil
	}
	return m.activate(e)
}

func (m *Model) activate(e uistate.Entry) tea.Cmd {
	m.panel.ClearQuery()
	switch e.Kind {
	case uistate.KindItem:
		if e.HasSubmenu(m.visible) {
			m.overlay.ToggleSubmenu(e.Item)
			return nil
		}
		return m.follow(e.Link, e.Label)
	case uistate.KindSubItem:
		return m.follow(e.Link, e.Label)
	case uistate.KindTheme:
		return m.execute(menu.ActionTheme, e.Label, "")
	case uistate.KindSignIn:
		m.overlay.Activate(e.Link)
		return m.execute(menu.ActionSignIn, e.Label, "")
	case uistate.KindSignOut:
		m.overlay.Close()
		return m.execute(menu.ActionSignOut, e.Label, "")
	}
	return nil
}

// follow closes the overlay and routes to link.
func (m *Model) follow(link, label string) tea.Cmd {
	m.overlay.Activate(link)
	return m.execute(menu.ActionNavigate, label, link)
}

func (m *Model) handleNavigateMsg(msg tea.Msg) tea.Cmd {
	nav, ok := msg.(menu.NavigateMsg)
	if !ok {
		return nil
	}
	m.navigate(nav.Path)
	return nil
}

func (m *Model) navigate(path string) {
	from := m.router.Current()
	if m.router.Navigate(path) {
		events.UI.Navigate(from, m.router.Current())
		m.errMsg = ""
	}
}

func (m *Model) back() {
	from := m.router.Current()
	if m.router.Back() {
		events.UI.Navigate(from, m.router.Current())
	}
}

func (m *Model) handleSessionMsg(msg tea.Msg) tea.Cmd {
	sm, ok := msg.(menu.SessionMsg)
	if !ok {
		return nil
	}
	m.session = sm.Session
	events.UI.Session(m.session.SignedIn, m.session.Admin)
	m.refreshVisible()
	m.overlay.SetItemCount(len(m.visible))
	if m.session.SignedIn {
		m.setInfo(fmt.Sprintf("Signed in as %s", m.session.Name()))
		if m.router.Current() == menu.AuthPath {
			m.navigate(route.Home)
		}
	} else {
		m.setInfo("Signed out")
	}
	if !m.pathAllowed(m.router.Current()) {
		m.navigate(route.Home)
	}
	return nil
}

// pathAllowed reports whether the session may view path. Paths not owned by
// any configured item are public.
func (m *Model) pathAllowed(path string) bool {
	for _, item := range m.opts.Items {
		if item.Requires == menu.RequireNone {
			continue
		}
		owned := item.Link != "" && item.Link != route.Home && route.Matches(path, item.Link)
		for _, sub := range item.Submenu {
			owned = owned || route.Matches(path, sub.Link)
		}
		if owned && !m.session.Allows(item.Requires) {
			return false
		}
	}
	return true
}

// signIn completes the sign-in page with the configured identity.
func (m *Model) signIn() tea.Cmd {
	identity := m.opts.Session
	identity.SignedIn = true
	if identity.DisplayName == "" {
		identity.DisplayName = "Reader"
	}
	return func() tea.Msg {
		return menu.SessionMsg{Session: identity}
	}
}

func (m *Model) handleThemeMsg(msg tea.Msg) tea.Cmd {
	m.dark = !m.dark
	m.styles = theme.New(m.dark, m.opts.AccentColor)
	events.UI.Theme(m.themeName())
	return nil
}

func (m *Model) themeName() string {
	if m.dark {
		return "dark"
	}
	return "light"
}

// entryInteractive reports whether panel rows accept pointer activation.
func (m *Model) entryInteractive() bool {
	phase := m.overlay.Phase()
	return phase == overlay.PhaseOpen || phase == overlay.PhaseOpening
}
