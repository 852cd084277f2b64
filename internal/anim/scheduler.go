package anim

// Handle references a tween slot in a Scheduler. The zero Handle never refers
// to a live tween.
type Handle struct {
	slot int
	gen  uint32
}

// Tween describes one timed interpolation of Target from From to To. Delay
// and Duration are expressed in scheduler time units. A nil Target turns the
// tween into a plain timer, which is how timelines track their own end.
type Tween struct {
	Target     *Value
	From       float64
	To         float64
	Delay      float64
	Duration   float64
	Ease       Easing
	OnComplete func()
}

type slot struct {
	Tween
	elapsed float64
	gen     uint32
	live    bool
}

// Scheduler owns a set of tweens stored in an arena and advances them from a
// frame loop. Each overlay creates its own scheduler; there is no global
// registry.
type Scheduler struct {
	slots  []slot
	free   []int
	owners map[*Value]Handle
	live   int
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{owners: make(map[*Value]Handle)}
}

// Start registers a tween and returns its handle. Any tween already driving
// the same Target is cancelled in place first, so a property is never driven
// by two tweens at once.
func (s *Scheduler) Start(t Tween) Handle {
	if s == nil {
		return Handle{}
	}
	if t.Target != nil {
		if prev, ok := s.owners[t.Target]; ok {
			s.Cancel(prev)
		}
	}
	if t.Ease == nil {
		t.Ease = Linear
	}
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = len(s.slots) - 1
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.Tween = t
	sl.elapsed = 0
	sl.live = true
	s.live++
	h := Handle{slot: idx, gen: sl.gen}
	if t.Target != nil {
		s.owners[t.Target] = h
	}
	return h
}

// To starts a tween from the target's live value.
func (s *Scheduler) To(target *Value, to, delay, duration float64, ease Easing, onComplete func()) Handle {
	return s.Start(Tween{
		Target:     target,
		From:       target.Get(),
		To:         to,
		Delay:      delay,
		Duration:   duration,
		Ease:       ease,
		OnComplete: onComplete,
	})
}

// Cancel detaches the tween. The target keeps whatever value it reached on the
// last frame; it is never snapped to either endpoint. The completion callback
// does not run. Cancelling a stale handle is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	if !s.Active(h) {
		return false
	}
	s.release(h.slot)
	return true
}

// Active reports whether h still refers to a running tween.
func (s *Scheduler) Active(h Handle) bool {
	if s == nil || h.gen == 0 || h.slot < 0 || h.slot >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.slot]
	return sl.live && sl.gen == h.gen
}

// Len returns the number of running tweens.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return s.live
}

// Owner returns the handle currently driving target, if any.
func (s *Scheduler) Owner(target *Value) (Handle, bool) {
	if s == nil || target == nil {
		return Handle{}, false
	}
	h, ok := s.owners[target]
	if !ok || !s.Active(h) {
		return Handle{}, false
	}
	return h, true
}

// Clear cancels every tween.
func (s *Scheduler) Clear() {
	if s == nil {
		return
	}
	for i := range s.slots {
		if s.slots[i].live {
			s.release(i)
		}
	}
}

// Advance moves every running tween forward by dt. Completion callbacks run
// after all tweens have been stepped, in slot order, so a callback that starts
// or cancels tweens never observes a half-advanced frame.
func (s *Scheduler) Advance(dt float64) {
	if s == nil || s.live == 0 || dt < 0 {
		return
	}
	var done []func()
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		sl.elapsed += dt
		local := sl.elapsed - sl.Delay
		if local < 0 {
			continue
		}
		p := 1.0
		if sl.Duration > 0 {
			p = clamp01(local / sl.Duration)
		}
		if sl.Target != nil {
			sl.Target.Set(Lerp(sl.From, sl.To, sl.Ease(p)))
		}
		if p >= 1 {
			cb := sl.OnComplete
			s.release(i)
			if cb != nil {
				done = append(done, cb)
			}
		}
	}
	for _, cb := range done {
		cb()
	}
}

func (s *Scheduler) release(idx int) {
	sl := &s.slots[idx]
	if sl.Target != nil {
		if h, ok := s.owners[sl.Target]; ok && h.slot == idx && h.gen == sl.gen {
			delete(s.owners, sl.Target)
		}
	}
	sl.live = false
	sl.Tween = Tween{}
	s.free = append(s.free, idx)
	s.live--
}
