package overlay

import (
	"github.com/atomicstack/staggered-menu/internal/anim"
	"github.com/atomicstack/staggered-menu/internal/logging/events"
)

// Phase is the top-level state of the overlay.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

const noSubmenu = -1

// Menu is the overlay controller. It owns the scheduler, every animated
// value, and the click-away subscription for one mounted overlay.
type Menu struct {
	opts  Options
	sched *anim.Scheduler

	phase    Phase
	busy     bool
	expanded int
	disposed bool

	layers []*anim.Value
	panel  *anim.Value
	items  []itemValues

	openTL  *anim.Timeline
	closeTL *anim.Timeline

	icon   *iconMorph
	color  *colorFade
	text   *textCycle
	clicks *clickAway
}

// New mounts an overlay in the closed state with every layer and the panel
// parked off-screen.
func New(opts Options) *Menu {
	opts = opts.normalized()
	sched := anim.New()
	m := &Menu{
		opts:     opts,
		sched:    sched,
		expanded: noSubmenu,
		panel:    anim.NewValue(opts.Position.Offscreen()),
		icon:     newIconMorph(sched),
		color:    newColorFade(sched, opts.ButtonColor, opts.OpenButtonColor, opts.ChangeColorOnOpen),
		text:     newTextCycle(sched, opts.OpenLabel, opts.CloseLabel),
	}
	m.layers = make([]*anim.Value, opts.Layers)
	for i := range m.layers {
		m.layers[i] = anim.NewValue(opts.Position.Offscreen())
	}
	m.items = newItemValues(opts.Items, false)
	m.clicks = newClickAway(opts.Pointer, func() { m.Close() })
	return m
}

// Toggle opens a closed overlay or closes an open one. While a top-level
// transition is in flight the call is ignored, never queued.
func (m *Menu) Toggle() bool {
	if m.disposed {
		return false
	}
	if m.busy {
		events.Menu.Ignored(m.phase.String())
		return false
	}
	opening := !m.Open()
	events.Menu.Toggle(opening)
	if opening {
		m.beginOpen()
	} else {
		m.beginClose()
	}
	return true
}

// Close closes the overlay. It is a no-op when already closed or closing;
// from the opening phase it interrupts the open sequence in place.
func (m *Menu) Close() bool {
	if m.disposed || m.phase == PhaseClosed || m.phase == PhaseClosing {
		return false
	}
	events.Menu.Close(m.phase.String())
	m.beginClose()
	return true
}

// ToggleSubmenu expands submenu i, or collapses it when it is already
// expanded. Only one submenu is expanded at a time.
func (m *Menu) ToggleSubmenu(i int) {
	if m.disposed || i < 0 {
		return
	}
	if m.expanded == i {
		m.expanded = noSubmenu
	} else {
		m.expanded = i
	}
	events.Menu.Submenu(i, m.expanded == i)
}

// CollapseSubmenu clears the expanded submenu.
func (m *Menu) CollapseSubmenu() {
	m.expanded = noSubmenu
}

// Activate handles a leaf link activation: the whole overlay closes and the
// expanded submenu resets.
func (m *Menu) Activate(link string) bool {
	if m.disposed {
		return false
	}
	events.Menu.Activate(link)
	m.expanded = noSubmenu
	return m.Close()
}

// SetBounds updates the panel and toggle-control rectangles used for
// click-away hit testing.
func (m *Menu) SetBounds(panel, toggle Rect) {
	m.clicks.panel = panel
	m.clicks.toggle = toggle
}

// SetItemCount re-derives per-item animated values after the visible item
// list changes. A settled open overlay shows new items at rest; an opening
// one restarts its open sequence from the live offsets so the new items are
// revealed.
func (m *Menu) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	if n == len(m.items) {
		return
	}
	m.items = newItemValues(n, m.phase == PhaseOpen && !m.busy)
	m.opts.Items = n
	if m.expanded >= n {
		m.expanded = noSubmenu
	}
	if m.phase == PhaseOpening && !m.disposed {
		m.dispatch(CmdOpenTimeline, true)
	}
}

// Advance steps every running animation by dt time units.
func (m *Menu) Advance(dt float64) {
	if m.disposed {
		return
	}
	m.sched.Advance(dt)
}

// Animating reports whether any tween is still running.
func (m *Menu) Animating() bool {
	return !m.disposed && m.sched.Len() > 0
}

// Dispose unmounts the overlay: every tween is cancelled and the pointer
// subscription is released. Later calls are no-ops.
func (m *Menu) Dispose() {
	if m.disposed {
		return
	}
	m.openTL.Kill()
	m.closeTL.Kill()
	m.sched.Clear()
	m.clicks.detach()
	m.busy = false
	m.disposed = true
}

func (m *Menu) beginOpen() {
	m.phase = PhaseOpening
	m.busy = true
	m.dispatch(CmdOpenTimeline, true)
	m.dispatchAuxiliary(true)
	if m.opts.CloseOnClickAway {
		m.dispatch(CmdAttachClickAway, true)
	}
}

func (m *Menu) beginClose() {
	m.phase = PhaseClosing
	m.busy = true
	m.expanded = noSubmenu
	m.dispatch(CmdDetachClickAway, false)
	m.dispatch(CmdCloseTimeline, false)
	m.dispatchAuxiliary(false)
}

func (m *Menu) dispatchAuxiliary(opening bool) {
	m.dispatch(CmdIcon, opening)
	if m.color.enabled {
		m.dispatch(CmdColor, opening)
	}
	m.dispatch(CmdText, opening)
}

func (m *Menu) dispatch(cmd Command, opening bool) {
	events.Menu.Command(cmd.String(), opening)
	if m.opts.OnCommand != nil {
		m.opts.OnCommand(cmd)
	}
	switch cmd {
	case CmdOpenTimeline:
		m.playOpen()
	case CmdCloseTimeline:
		m.playClose()
	case CmdIcon:
		m.icon.animate(opening)
	case CmdColor:
		m.color.animate(opening)
	case CmdText:
		m.text.animate(opening)
	case CmdAttachClickAway:
		m.clicks.attach()
	case CmdDetachClickAway:
		m.clicks.detach()
	}
}

func (m *Menu) settle(phase Phase) {
	m.phase = phase
	m.busy = false
	events.Timeline.Complete(phase.String())
}

// Open reports whether the overlay is open or opening.
func (m *Menu) Open() bool {
	return m.phase == PhaseOpening || m.phase == PhaseOpen
}

// Busy reports whether a top-level transition is in flight.
func (m *Menu) Busy() bool {
	return m.busy
}

// Phase returns the current top-level state.
func (m *Menu) Phase() Phase {
	return m.phase
}

// Expanded returns the expanded submenu index, if any.
func (m *Menu) Expanded() (int, bool) {
	return m.expanded, m.expanded != noSubmenu
}

// Position returns the anchor edge.
func (m *Menu) Position() Position {
	return m.opts.Position
}

// Numbering reports whether item index numbers are displayed.
func (m *Menu) Numbering() bool {
	return m.opts.Numbering
}

// PanelOffset returns the live panel offset in percent of its width.
func (m *Menu) PanelOffset() float64 {
	return m.panel.Get()
}

// LayerOffsets returns the live offset of each background layer, bottom
// first.
func (m *Menu) LayerOffsets() []float64 {
	out := make([]float64, len(m.layers))
	for i, l := range m.layers {
		out[i] = l.Get()
	}
	return out
}

// ItemCount returns the number of animated item slots.
func (m *Menu) ItemCount() int {
	return len(m.items)
}

// Item returns the live transform of item i. Out-of-range indices report the
// hidden baseline.
func (m *Menu) Item(i int) ItemState {
	if i < 0 || i >= len(m.items) {
		return ItemState{Lift: itemLiftBaseline, Tilt: itemTiltBaseline}
	}
	it := m.items[i]
	return ItemState{Lift: it.lift.Get(), Tilt: it.tilt.Get(), Number: it.number.Get()}
}

// IconAngle returns the toggle icon rotation in degrees.
func (m *Menu) IconAngle() float64 {
	return m.icon.angle.Get()
}

// ButtonColor returns the current toggle-control colour as hex.
func (m *Menu) ButtonColor() string {
	return m.color.hex()
}

// Label returns the toggle label currently scrolled into view.
func (m *Menu) Label() string {
	return m.text.visible()
}

// LabelLines returns the label sequence of the last text cycle.
func (m *Menu) LabelLines() []string {
	return append([]string(nil), m.text.lines...)
}

// ClickAwayAttached reports whether the pointer subscription is held.
func (m *Menu) ClickAwayAttached() bool {
	return m.clicks.attached()
}
