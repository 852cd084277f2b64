package overlay

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	opToggle = iota
	opClose
	opFrame
	opLongStep
	opSubmenu
	opOutsideClick
	opCount
)

// TestMenuStateProperties drives random interaction sequences through the
// state machine and checks the invariants after every step.
func TestMenuStateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("open and closed are never reported together", prop.ForAll(
		func(ops []int) bool {
			m, _, hub := newTestMenu(t, nil)
			for _, op := range ops {
				apply(m, hub, op)
				if m.Open() && m.Phase() == PhaseClosed {
					return false
				}
				if m.Open() && m.Phase() == PhaseClosing {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, opCount-1)),
	))

	properties.Property("busy holds exactly while a transition is in flight", prop.ForAll(
		func(ops []int) bool {
			m, _, hub := newTestMenu(t, nil)
			for _, op := range ops {
				apply(m, hub, op)
				inFlight := m.Phase() == PhaseOpening || m.Phase() == PhaseClosing
				if m.Busy() != inFlight {
					return false
				}
			}
			for i := 0; i < 10000 && m.Animating(); i++ {
				m.Advance(frame)
			}
			return !m.Busy() && (m.Phase() == PhaseOpen || m.Phase() == PhaseClosed)
		},
		gen.SliceOf(gen.IntRange(0, opCount-1)),
	))

	properties.Property("at most one open or close timeline is active", prop.ForAll(
		func(ops []int) bool {
			m, _, hub := newTestMenu(t, nil)
			for _, op := range ops {
				apply(m, hub, op)
				if m.openTL.Active() && m.closeTL.Active() {
					return false
				}
				if hub.Listeners() > 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, opCount-1)),
	))

	properties.Property("offsets stay within the travel range", prop.ForAll(
		func(ops []int) bool {
			m, _, hub := newTestMenu(t, nil)
			for _, op := range ops {
				apply(m, hub, op)
				for _, off := range append(m.LayerOffsets(), m.PanelOffset()) {
					if off < -1e-9 || off > 100+1e-9 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, opCount-1)),
	))

	properties.TestingRun(t)
}

func apply(m *Menu, hub *PointerHub, op int) {
	switch op {
	case opToggle:
		m.Toggle()
	case opClose:
		m.Close()
	case opFrame:
		m.Advance(frame)
	case opLongStep:
		m.Advance(0.25)
	case opSubmenu:
		m.ToggleSubmenu(1)
	case opOutsideClick:
		hub.Dispatch(-1, -1)
	}
}
