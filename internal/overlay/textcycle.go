package overlay

import (
	"math"

	"github.com/atomicstack/staggered-menu/internal/anim"
)

const (
	textCycles       = 3
	textBaseDuration = 0.5
	textPerLine      = 0.07
)

// CycleSequence returns the label lines scrolled through when the toggle
// label changes from current to target. The last two lines always equal
// target so the label settles without a visible flicker.
func CycleSequence(current, target string, cycles int) []string {
	seq := []string{current}
	last := current
	for i := 0; i < cycles; i++ {
		if last == current {
			last = target
		} else {
			last = current
		}
		seq = append(seq, last)
	}
	if last != target {
		seq = append(seq, target)
	}
	return append(seq, target)
}

// CycleShift returns the final vertical shift, in percent of the line stack,
// that brings the last of n lines into view.
func CycleShift(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n-1) / float64(n) * 100
}

// CycleDuration keeps per-line pacing constant regardless of sequence length.
func CycleDuration(n int) float64 {
	return textBaseDuration + float64(n)*textPerLine
}

type textCycle struct {
	sched      *anim.Scheduler
	openLabel  string
	closeLabel string
	lines      []string
	shift      *anim.Value
	tween      anim.Handle
}

func newTextCycle(sched *anim.Scheduler, openLabel, closeLabel string) *textCycle {
	return &textCycle{
		sched:      sched,
		openLabel:  openLabel,
		closeLabel: closeLabel,
		lines:      []string{openLabel, closeLabel},
		shift:      anim.NewValue(0),
	}
}

// animate restarts the flourish from the top of a fresh sequence, replacing
// any sequence still scrolling.
func (c *textCycle) animate(opening bool) {
	c.sched.Cancel(c.tween)
	current, target := c.openLabel, c.closeLabel
	if !opening {
		current, target = c.closeLabel, c.openLabel
	}
	c.lines = CycleSequence(current, target, textCycles)
	n := len(c.lines)
	c.shift.Set(0)
	c.tween = c.sched.To(c.shift, -CycleShift(n), 0, CycleDuration(n), anim.Power4Out, nil)
}

func (c *textCycle) visible() string {
	n := len(c.lines)
	if n == 0 {
		return ""
	}
	idx := int(math.Round(-c.shift.Get() / 100 * float64(n)))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return c.lines[idx]
}
