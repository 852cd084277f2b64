package backend

import "time"

// debouncer collapses a burst of triggers into one firing delay after the
// last trigger. It is owned by a single goroutine.
type debouncer struct {
	delay time.Duration
	timer *time.Timer
	armed bool
}

func newDebouncer(delay time.Duration) *debouncer {
	if delay < 0 {
		delay = 0
	}
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger() {
	if d.timer == nil {
		d.timer = time.NewTimer(d.delay)
	} else {
		d.timer.Reset(d.delay)
	}
	d.armed = true
}

// fired returns the channel to select on. It is nil while idle so the select
// case never fires.
func (d *debouncer) fired() <-chan time.Time {
	if !d.armed {
		return nil
	}
	return d.timer.C
}

// done disarms the debouncer after its firing has been consumed.
func (d *debouncer) done() {
	d.armed = false
}

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
