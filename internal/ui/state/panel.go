package state

import (
	"github.com/atomicstack/staggered-menu/internal/menu"
)

// Kind identifies what an entry does when activated.
type Kind int

const (
	KindItem Kind = iota
	KindSubItem
	KindTheme
	KindSignIn
	KindSignOut
)

// Entry is one selectable row in the panel. Item is the index of the owning
// top-level item for item and subitem rows, and -1 for action rows.
type Entry struct {
	Kind  Kind
	Label string
	Link  string
	Icon  string
	Item  int
}

// HasSubmenu reports whether activating the entry expands a submenu.
func (e Entry) HasSubmenu(items []menu.Item) bool {
	return e.Kind == KindItem && e.Item >= 0 && e.Item < len(items) && items[e.Item].HasSubmenu()
}

func (e Entry) key() string {
	return string(rune('0'+e.Kind)) + e.Link + "\x00" + e.Label
}

// Flatten lays out the visible items, the expanded submenu below its parent,
// and the trailing theme and session actions.
func Flatten(items []menu.Item, expanded int, session menu.Session) []Entry {
	entries := make([]Entry, 0, len(items)+4)
	for i, item := range items {
		entries = append(entries, Entry{Kind: KindItem, Label: item.Label, Link: item.Link, Item: i})
		if i != expanded {
			continue
		}
		for _, sub := range item.Submenu {
			entries = append(entries, Entry{Kind: KindSubItem, Label: sub.Label, Link: sub.Link, Icon: sub.Icon, Item: i})
		}
	}
	entries = append(entries, Entry{Kind: KindTheme, Label: "Theme", Item: -1})
	if session.SignedIn {
		entries = append(entries, Entry{Kind: KindSignOut, Label: "Sign out", Item: -1})
	} else {
		entries = append(entries, Entry{Kind: KindSignIn, Label: "Sign in", Link: menu.AuthPath, Item: -1})
	}
	return entries
}

// Panel tracks the cursor, the type-to-jump query, and the viewport over the
// flattened entries.
type Panel struct {
	Entries        []Entry
	Cursor         int
	Query          string
	ViewportOffset int
}

// NewPanel constructs a panel with the cursor on the first entry.
func NewPanel(entries []Entry) *Panel {
	p := &Panel{}
	p.SetEntries(entries)
	return p
}

// SetEntries replaces the rows, keeping the cursor on the same entry when it
// survives the change.
func (p *Panel) SetEntries(entries []Entry) {
	var prev string
	if cur, ok := p.Current(); ok {
		prev = cur.key()
	}
	p.Entries = append([]Entry(nil), entries...)
	if prev != "" {
		for i, e := range p.Entries {
			if e.key() == prev {
				p.Cursor = i
				return
			}
		}
	}
	p.clampCursor()
}

// Current returns the entry under the cursor.
func (p *Panel) Current() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.Cursor], true
}

// IndexOfItem returns the row of top-level item i.
func (p *Panel) IndexOfItem(i int) int {
	for idx, e := range p.Entries {
		if e.Kind == KindItem && e.Item == i {
			return idx
		}
	}
	return -1
}

// Select moves the cursor to row idx.
func (p *Panel) Select(idx int) bool {
	if idx < 0 || idx >= len(p.Entries) {
		return false
	}
	old := p.Cursor
	p.Cursor = idx
	return old != idx
}

func (p *Panel) clampCursor() {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
}
