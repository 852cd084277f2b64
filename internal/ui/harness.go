package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. The
// frame clock is detached so tests advance animations explicitly.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.frameCmd = func() tea.Cmd { return nil }
	}
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.Send(msg)
	}
}

// Advance plays d worth of animation frames.
func (h *Harness) Advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frameInterval {
		h.Send(frameMsg{dt: frameInterval.Seconds()})
	}
}

// Settle plays frames until no animation is running.
func (h *Harness) Settle() {
	for i := 0; i < 100000 && h.model.overlay.Animating(); i++ {
		h.Send(frameMsg{dt: frameInterval.Seconds()})
	}
}

// Click presses the left mouse button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Key sends a named key such as "enter" or a run of printable runes.
func (h *Harness) Key(name string) {
	h.Send(keyMsg(name))
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
