package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// frameMsg advances the overlay clock by dt seconds of wall time.
type frameMsg struct {
	dt float64
}

func defaultFrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{dt: frameInterval.Seconds()}
	})
}

// startFrames schedules the next frame while tweens are running. Only one
// frame is ever outstanding.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.overlay.Animating() {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	m.ticking = false
	m.overlay.Advance(frame.dt * m.opts.TimeScale)
	return nil
}
