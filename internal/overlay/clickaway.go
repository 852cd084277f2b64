package overlay

import (
	"sort"

	"github.com/atomicstack/staggered-menu/internal/logging/events"
)

// PointerSource delivers pointer-down events to subscribers. Subscribe
// returns the function that releases the subscription.
type PointerSource interface {
	Subscribe(fn func(x, y int)) (unsubscribe func())
}

// PointerHub is the program-wide pointer source: the UI feeds it every press
// and it fans them out to current subscribers.
type PointerHub struct {
	next int
	subs map[int]func(x, y int)
}

// NewPointerHub returns an empty hub.
func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]func(x, y int))}
}

// Subscribe registers fn until the returned function is called.
func (h *PointerHub) Subscribe(fn func(x, y int)) func() {
	id := h.next
	h.next++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

// Dispatch delivers a press to a snapshot of current subscribers, so handlers
// may unsubscribe while being called.
func (h *PointerHub) Dispatch(x, y int) {
	ids := make([]int, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := h.subs[id]; ok {
			fn(x, y)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (h *PointerHub) Listeners() int {
	return len(h.subs)
}

// clickAway holds at most one subscription, taken while the overlay is open.
type clickAway struct {
	src     PointerSource
	release func()
	onClick func()
	panel   Rect
	toggle  Rect
}

func newClickAway(src PointerSource, onOutside func()) *clickAway {
	return &clickAway{src: src, onClick: onOutside}
}

func (c *clickAway) attach() {
	if c.src == nil || c.release != nil {
		return
	}
	c.release = c.src.Subscribe(c.dispatch)
	events.Menu.ClickAway(true)
}

func (c *clickAway) detach() {
	if c.release == nil {
		return
	}
	c.release()
	c.release = nil
	events.Menu.ClickAway(false)
}

func (c *clickAway) attached() bool {
	return c.release != nil
}

func (c *clickAway) dispatch(x, y int) {
	if c.release == nil {
		return
	}
	if c.panel.Contains(x, y) || c.toggle.Contains(x, y) {
		return
	}
	c.onClick()
}
