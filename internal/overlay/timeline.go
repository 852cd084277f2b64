package overlay

import (
	"github.com/atomicstack/staggered-menu/internal/anim"
	"github.com/atomicstack/staggered-menu/internal/logging/events"
)

const (
	layerDuration = 0.5
	layerStagger  = 0.07
	panelGap      = 0.08
	panelDuration = 0.65

	itemsStartRatio = 0.15
	itemDuration    = 1.0
	itemStagger     = 0.1
	numberDelay     = 0.1
	numberDuration  = 0.6
	numberStagger   = 0.08

	closeDuration = 0.32

	itemLiftBaseline = 140.0
	itemTiltBaseline = 10.0
)

// ItemState is the live transform of one panel item: Lift is the vertical
// offset of its label in percent of line height, Tilt its rotation in
// degrees, Number the opacity of its index number.
type ItemState struct {
	Lift   float64
	Tilt   float64
	Number float64
}

type itemValues struct {
	lift   *anim.Value
	tilt   *anim.Value
	number *anim.Value
}

func newItemValues(n int, settled bool) []itemValues {
	out := make([]itemValues, n)
	for i := range out {
		if settled {
			out[i] = itemValues{lift: anim.NewValue(0), tilt: anim.NewValue(0), number: anim.NewValue(1)}
			continue
		}
		out[i] = itemValues{
			lift:   anim.NewValue(itemLiftBaseline),
			tilt:   anim.NewValue(itemTiltBaseline),
			number: anim.NewValue(0),
		}
	}
	return out
}

func (m *Menu) resetItemLabels() {
	for _, it := range m.items {
		it.lift.Set(itemLiftBaseline)
		it.tilt.Set(itemTiltBaseline)
	}
}

// buildOpenTimeline composes the open sequence from the live offsets of every
// layer and the panel, so an open that follows an interrupted close resumes
// from wherever the close left things.
func (m *Menu) buildOpenTimeline() *anim.Timeline {
	tl := m.sched.NewTimeline()

	for i, layer := range m.layers {
		tl.FromTo(layer, layer.Get(), 0, float64(i)*layerStagger, layerDuration, anim.Power4Out)
	}

	panelAt := 0.0
	if n := len(m.layers); n > 0 {
		panelAt = float64(n-1)*layerStagger + panelGap
	}
	tl.FromTo(m.panel, m.panel.Get(), 0, panelAt, panelDuration, anim.Power4Out)

	if len(m.items) > 0 {
		itemsAt := panelAt + panelDuration*itemsStartRatio
		m.resetItemLabels()
		for i, it := range m.items {
			at := itemsAt + float64(i)*itemStagger
			tl.FromTo(it.lift, itemLiftBaseline, 0, at, itemDuration, anim.Power4Out)
			tl.FromTo(it.tilt, itemTiltBaseline, 0, at, itemDuration, anim.Power4Out)
		}
		if m.opts.Numbering {
			numbers := make([]*anim.Value, len(m.items))
			for i, it := range m.items {
				it.number.Set(0)
				numbers[i] = it.number
			}
			tl.Stagger(numbers, 0, 1, itemsAt+numberDelay, numberStagger, numberDuration, anim.Power2Out)
		}
	}
	return tl
}

func (m *Menu) playOpen() {
	m.openTL.Kill()
	m.closeTL.Kill()
	m.closeTL = nil
	tl := m.buildOpenTimeline()
	tl.OnComplete(func() {
		m.openTL = nil
		m.settle(PhaseOpen)
	})
	m.openTL = tl
	events.Timeline.Open(len(m.layers), len(m.items), tl.Duration())
	tl.Play()
}

// buildCloseTimeline slides every layer and the panel off-screen together,
// starting from whatever offsets they currently hold.
func (m *Menu) buildCloseTimeline() *anim.Timeline {
	tl := m.sched.NewTimeline()
	off := m.opts.Position.Offscreen()
	for _, layer := range m.layers {
		tl.FromTo(layer, layer.Get(), off, 0, closeDuration, anim.Power3In)
	}
	tl.FromTo(m.panel, m.panel.Get(), off, 0, closeDuration, anim.Power3In)
	return tl
}

func (m *Menu) playClose() {
	// The open sequence must stop first so the close captures the offsets it
	// actually reached.
	m.openTL.Kill()
	m.openTL = nil
	m.closeTL.Kill()
	tl := m.buildCloseTimeline()
	tl.OnComplete(func() {
		m.closeTL = nil
		m.resetItemLabels()
		m.settle(PhaseClosed)
	})
	m.closeTL = tl
	events.Timeline.Close(tl.Duration())
	tl.Play()
}
