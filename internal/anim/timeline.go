package anim

// Step is one tween placed on a timeline at a start offset.
type Step struct {
	Target   *Value
	From     float64
	To       float64
	At       float64
	Duration float64
	Ease     Easing
}

// End returns the time at which the step finishes.
func (s Step) End() float64 {
	return s.At + s.Duration
}

// Timeline groups steps that play relative to a shared start and fires one
// completion callback when the last step ends.
type Timeline struct {
	sched      *Scheduler
	steps      []Step
	handles    []Handle
	done       Handle
	onComplete func()
	playing    bool
}

// NewTimeline creates an empty, paused timeline bound to s.
func (s *Scheduler) NewTimeline() *Timeline {
	return &Timeline{sched: s}
}

// FromTo appends a step. Unbound targets are skipped.
func (tl *Timeline) FromTo(target *Value, from, to, at, duration float64, ease Easing) {
	if tl == nil || target == nil {
		return
	}
	tl.steps = append(tl.steps, Step{Target: target, From: from, To: to, At: at, Duration: duration, Ease: ease})
}

// Stagger appends one step per target, each starting each units after the
// previous one.
func (tl *Timeline) Stagger(targets []*Value, from, to, at, each, duration float64, ease Easing) {
	for i, target := range targets {
		tl.FromTo(target, from, to, at+float64(i)*each, duration, ease)
	}
}

// OnComplete registers the callback fired once every step has finished.
func (tl *Timeline) OnComplete(fn func()) {
	if tl == nil {
		return
	}
	tl.onComplete = fn
}

// Steps returns the scheduled steps in insertion order.
func (tl *Timeline) Steps() []Step {
	if tl == nil {
		return nil
	}
	return append([]Step(nil), tl.steps...)
}

// Duration returns the end time of the latest step.
func (tl *Timeline) Duration() float64 {
	if tl == nil {
		return 0
	}
	var end float64
	for _, st := range tl.steps {
		if e := st.End(); e > end {
			end = e
		}
	}
	return end
}

// Play hands every step to the scheduler. Playing twice is a no-op.
func (tl *Timeline) Play() {
	if tl == nil || tl.playing || tl.sched == nil {
		return
	}
	tl.playing = true
	tl.handles = tl.handles[:0]
	for _, st := range tl.steps {
		tl.handles = append(tl.handles, tl.sched.Start(Tween{
			Target:   st.Target,
			From:     st.From,
			To:       st.To,
			Delay:    st.At,
			Duration: st.Duration,
			Ease:     st.Ease,
		}))
	}
	tl.done = tl.sched.Start(Tween{
		Duration: tl.Duration(),
		OnComplete: func() {
			tl.playing = false
			if tl.onComplete != nil {
				tl.onComplete()
			}
		},
	})
}

// Active reports whether the timeline is still playing.
func (tl *Timeline) Active() bool {
	if tl == nil || !tl.playing {
		return false
	}
	return tl.sched.Active(tl.done)
}

// Kill cancels every step in place and drops the completion callback.
func (tl *Timeline) Kill() {
	if tl == nil || !tl.playing {
		return
	}
	for _, h := range tl.handles {
		tl.sched.Cancel(h)
	}
	tl.sched.Cancel(tl.done)
	tl.handles = nil
	tl.playing = false
}
