package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/staggered-menu/internal/backend"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
	"github.com/atomicstack/staggered-menu/internal/route"
	"github.com/atomicstack/staggered-menu/internal/theme"
	"github.com/atomicstack/staggered-menu/internal/ui/command"
	uistate "github.com/atomicstack/staggered-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the navigation overlay and the
// page it sits on.
type Model struct {
	opts Options

	overlay *overlay.Menu
	hub     *overlay.PointerHub
	router  *route.Router
	session menu.Session
	visible []menu.Item
	panel   *uistate.Panel

	registry *menu.Registry
	bus      *command.Bus
	keys     keyMap
	help     help.Model
	styles   *theme.Styles
	dark     bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	ticking  bool
	frameCmd func() tea.Cmd

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	backend  *backend.Watcher
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI from opts. watcher may be nil.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}
	if opts.Position == "" {
		opts.Position = overlay.PositionRight
	}
	m := &Model{
		opts:     opts,
		hub:      overlay.NewPointerHub(),
		router:   route.New(opts.StartPath),
		session:  opts.Session,
		registry: menu.BuildRegistry(),
		bus:      command.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		dark:     opts.Dark,
		frameCmd: defaultFrameCmd,
		backend:  watcher,
	}
	m.styles = theme.New(m.dark, opts.AccentColor)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.refreshVisible()
	m.mountOverlay()
	m.panel = uistate.NewPanel(m.entries())
	m.syncBounds()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(menu.NavigateMsg{}):  m.handleNavigateMsg,
		reflect.TypeOf(menu.SessionMsg{}):   m.handleSessionMsg,
		reflect.TypeOf(menu.ThemeMsg{}):     m.handleThemeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate re-derives the panel rows and hit boxes from the overlay and
// keeps the frame clock running while anything animates.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncPanel()
	m.syncBounds()
	if cmd := m.startFrames(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.viewWidth()
	return nil
}

func (m *Model) mountOverlay() {
	if m.overlay != nil {
		m.overlay.Dispose()
	}
	m.overlay = overlay.New(m.opts.overlayOptions(len(m.visible), m.hub))
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// Overlay exposes the overlay controller.
func (m *Model) Overlay() *overlay.Menu {
	return m.overlay
}

// Router exposes the routing collaborator.
func (m *Model) Router() *route.Router {
	return m.router
}

// Panel exposes the panel cursor state.
func (m *Model) Panel() *uistate.Panel {
	return m.panel
}

// Session returns the current authentication state.
func (m *Model) Session() menu.Session {
	return m.session
}

// Pointer exposes the pointer hub fed by mouse presses.
func (m *Model) Pointer() *overlay.PointerHub {
	return m.hub
}
