package overlay

import (
	"github.com/atomicstack/staggered-menu/internal/anim"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	iconOpenAngle     = 225.0
	iconOpenDuration  = 0.8
	iconCloseDuration = 0.35

	colorDelay    = 0.18
	colorDuration = 0.3
)

type iconMorph struct {
	sched *anim.Scheduler
	angle *anim.Value
	tween anim.Handle
}

func newIconMorph(sched *anim.Scheduler) *iconMorph {
	return &iconMorph{sched: sched, angle: anim.NewValue(0)}
}

// animate overwrites any running rotation rather than queueing behind it.
func (a *iconMorph) animate(opening bool) {
	a.sched.Cancel(a.tween)
	if opening {
		a.tween = a.sched.To(a.angle, iconOpenAngle, 0, iconOpenDuration, anim.Power4Out, nil)
		return
	}
	a.tween = a.sched.To(a.angle, 0, 0, iconCloseDuration, anim.Power3InOut, nil)
}

// colorFade crossfades the toggle control between its idle and open colours.
// mix runs from 0 (idle) to 1 (open).
type colorFade struct {
	sched   *anim.Scheduler
	idle    colorful.Color
	open    colorful.Color
	mix     *anim.Value
	tween   anim.Handle
	enabled bool
}

func newColorFade(sched *anim.Scheduler, idle, open string, enabled bool) *colorFade {
	return &colorFade{
		sched:   sched,
		idle:    parseColor(idle),
		open:    parseColor(open),
		mix:     anim.NewValue(0),
		enabled: enabled,
	}
}

func (c *colorFade) animate(opening bool) {
	if !c.enabled {
		return
	}
	c.sched.Cancel(c.tween)
	target := 0.0
	if opening {
		target = 1
	}
	c.tween = c.sched.To(c.mix, target, colorDelay, colorDuration, anim.Power2Out, nil)
}

func (c *colorFade) hex() string {
	return c.idle.BlendLab(c.open, c.mix.Get()).Clamped().Hex()
}

func parseColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
