package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/staggered-menu/internal/backend"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
	uistate "github.com/atomicstack/staggered-menu/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

func newTestHarness(t *testing.T, mutate func(*Options)) *Harness {
	t.Helper()
	opts := DefaultOptions()
	opts.Width = 80
	opts.Height = 24
	if mutate != nil {
		mutate(&opts)
	}
	return NewHarness(NewModel(opts, nil))
}

func openSettled(t *testing.T, h *Harness) {
	t.Helper()
	h.Key("tab")
	h.Settle()
	if got := h.Model().Overlay().Phase(); got != overlay.PhaseOpen {
		t.Fatalf("expected open overlay, got %s", got)
	}
}

func TestToggleKeyOpensAndSettles(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("tab")
	if got := h.Model().Overlay().Phase(); got != overlay.PhaseOpening {
		t.Fatalf("expected opening, got %s", got)
	}
	h.Settle()
	view := h.View()
	for _, want := range []string{"Home", "Books", "Theme: dark", "Sign in", "Close"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Favorites") {
		t.Fatalf("signed-in items should be hidden:\n%s", view)
	}
}

func TestToggleIgnoredWhileOpening(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("tab")
	h.Key("tab")
	if got := h.Model().Overlay().Phase(); got != overlay.PhaseOpening {
		t.Fatalf("second toggle should be ignored, got %s", got)
	}
}

func TestEscInterruptsOpening(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("tab")
	h.Advance(overlayMidOpen)
	h.Key("esc")
	if got := h.Model().Overlay().Phase(); got != overlay.PhaseClosing {
		t.Fatalf("expected closing after esc, got %s", got)
	}
	h.Settle()
	if h.Model().Overlay().Open() || h.Model().Overlay().Busy() {
		t.Fatalf("expected closed idle overlay")
	}
}

func TestCursorStartsOnActiveEntry(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.StartPath = "/books/42"
	})
	openSettled(t, h)
	if cur, _ := h.Model().Panel().Current(); cur.Label != "Books" {
		t.Fatalf("expected cursor on Books, got %q", cur.Label)
	}
}

func TestActivateLeafNavigatesAndCloses(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	h.Key("boo")
	if cur, _ := h.Model().Panel().Current(); cur.Label != "Books" {
		t.Fatalf("expected jump to Books, got %q", cur.Label)
	}
	h.Key("enter")
	if got := h.Model().Router().Current(); got != "/books" {
		t.Fatalf("expected /books, got %s", got)
	}
	if got := h.Model().Overlay().Phase(); got != overlay.PhaseClosing {
		t.Fatalf("expected closing after activation, got %s", got)
	}
	h.Settle()
	if !strings.Contains(h.View(), "You are viewing Books.") {
		t.Fatalf("expected books page:\n%s", h.View())
	}
}

func TestSubmenuExpandsBelowParent(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Session = menu.Session{SignedIn: true, DisplayName: "Ada"}
	})
	openSettled(t, h)
	h.Key("sect")
	h.Key("enter")
	if i, ok := h.Model().Overlay().Expanded(); !ok || i != 2 {
		t.Fatalf("expected Sections expanded, got %d %v", i, ok)
	}
	if h.Model().Overlay().Phase() != overlay.PhaseOpen {
		t.Fatalf("expanding a submenu must not close the overlay")
	}
	entries := h.Model().Panel().Entries
	if entries[3].Kind != uistate.KindSubItem {
		t.Fatalf("expected subitems after Sections, got %+v", entries[3])
	}
	h.Key("games")
	h.Key("enter")
	if got := h.Model().Router().Current(); got != "/sections/games" {
		t.Fatalf("expected /sections/games, got %s", got)
	}
	if _, ok := h.Model().Overlay().Expanded(); ok {
		t.Fatalf("leaf activation should collapse the submenu")
	}
}

func TestJumpQueryClearedWithEsc(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	h.Key("bo")
	h.Key("esc")
	if h.Model().Panel().Query != "" {
		t.Fatalf("expected query cleared")
	}
	if !h.Model().Overlay().Open() {
		t.Fatalf("first esc should only clear the query")
	}
	h.Key("esc")
	if h.Model().Overlay().Phase() != overlay.PhaseClosing {
		t.Fatalf("second esc should close")
	}
}

func TestCursorKeysWrap(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	h.Key("up")
	last := len(h.Model().Panel().Entries) - 1
	if h.Model().Panel().Cursor != last {
		t.Fatalf("expected wrap to %d, got %d", last, h.Model().Panel().Cursor)
	}
	h.Key("home")
	if h.Model().Panel().Cursor != 0 {
		t.Fatalf("expected home at 0")
	}
}

func TestSignInFlow(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Session = menu.Session{DisplayName: "Ada"}
	})
	openSettled(t, h)
	h.Key("sign")
	h.Key("enter")
	h.Settle()
	if got := h.Model().Router().Current(); got != menu.AuthPath {
		t.Fatalf("expected %s, got %s", menu.AuthPath, got)
	}
	if !strings.Contains(h.View(), "Press enter to sign in as Ada.") {
		t.Fatalf("expected sign-in page:\n%s", h.View())
	}
	h.Key("enter")
	if !h.Model().Session().SignedIn {
		t.Fatalf("expected signed in")
	}
	if got := h.Model().Router().Current(); got != "/" {
		t.Fatalf("expected redirect home after sign-in, got %s", got)
	}
	if got := h.Model().Overlay().ItemCount(); got != 4 {
		t.Fatalf("expected 4 items after sign-in, got %d", got)
	}
}

func TestSignOutLeavesRestrictedPage(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Session = menu.Session{SignedIn: true, DisplayName: "Ada"}
		o.StartPath = "/favorites"
	})
	openSettled(t, h)
	if !strings.Contains(h.View(), "Ada") {
		t.Fatalf("expected user section:\n%s", h.View())
	}
	h.Key("end")
	if cur, _ := h.Model().Panel().Current(); cur.Kind != uistate.KindSignOut {
		t.Fatalf("expected sign out entry, got %+v", cur)
	}
	h.Key("enter")
	if h.Model().Session().SignedIn {
		t.Fatalf("expected signed out")
	}
	if got := h.Model().Router().Current(); got != "/" {
		t.Fatalf("expected redirect home, got %s", got)
	}
	if got := h.Model().Overlay().ItemCount(); got != 2 {
		t.Fatalf("expected 2 items after sign-out, got %d", got)
	}
}

func TestThemeToggle(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("ctrl+t")
	if h.Model().themeName() != "light" {
		t.Fatalf("expected light theme")
	}
	openSettled(t, h)
	if !strings.Contains(h.View(), "Theme: light") {
		t.Fatalf("expected theme entry to reflect light:\n%s", h.View())
	}
}

func TestBackspaceGoesBack(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(menu.NavigateMsg{Path: "/books"})
	h.Key("backspace")
	if got := h.Model().Router().Current(); got != "/" {
		t.Fatalf("expected back to /, got %s", got)
	}
}

func TestQuitWhenClosed(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	h.Key("q")
	if h.Quit() {
		t.Fatalf("q should feed type-to-jump while open")
	}
	h.Key("esc")
	h.Key("esc")
	h.Settle()
	h.Key("q")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestReloadRemountsClosedOverlay(t *testing.T) {
	h := newTestHarness(t, nil)
	before := h.Model().Overlay()
	on := true
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindMenuFile, Data: menu.Document{
		Logo:                 "Stacks",
		Position:             "left",
		Labels:               menu.Labels{Open: "Open"},
		Items:                []menu.Item{{Label: "Catalogue", Link: "/catalogue"}},
		DisplayItemNumbering: &on,
	}}})
	m := h.Model()
	if m.Overlay() == before {
		t.Fatalf("expected a fresh overlay")
	}
	if m.Overlay().Position() != overlay.PositionLeft || m.Overlay().ItemCount() != 1 {
		t.Fatalf("unexpected overlay after reload: %s %d", m.Overlay().Position(), m.Overlay().ItemCount())
	}
	if before.Animating() || h.Model().Pointer().Listeners() != 0 {
		t.Fatalf("old overlay should be disposed")
	}
	view := h.View()
	if !strings.Contains(view, "Stacks") || !strings.Contains(view, "Open +") {
		t.Fatalf("expected reloaded header:\n%s", view)
	}
}

func TestReloadKeepsLockedOptions(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Locked = map[string]bool{OptLogo: true}
	})
	h.Send(backendEventMsg{event: backend.Event{Data: menu.Document{Logo: "Stacks"}}})
	if h.Model().opts.Logo != "Library" {
		t.Fatalf("locked logo should survive reload, got %q", h.Model().opts.Logo)
	}
}

func TestReloadWhileOpenOnlyUpdatesItems(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	before := h.Model().Overlay()
	h.Send(backendEventMsg{event: backend.Event{Data: menu.Document{
		Items: []menu.Item{{Label: "A", Link: "/a"}, {Label: "B", Link: "/b"}, {Label: "C", Link: "/c"}},
	}}})
	if h.Model().Overlay() != before {
		t.Fatalf("open overlay must not be remounted")
	}
	if before.ItemCount() != 3 || before.Item(2).Lift != 0 {
		t.Fatalf("expected settled items, got %d %+v", before.ItemCount(), before.Item(2))
	}
}

func TestReloadWhileOpeningRevealsNewItems(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("tab")
	h.Advance(150 * time.Millisecond)
	before := h.Model().Overlay()
	h.Send(backendEventMsg{event: backend.Event{Data: menu.Document{
		Items: []menu.Item{{Label: "A", Link: "/a"}, {Label: "B", Link: "/b"}, {Label: "C", Link: "/c"}},
	}}})
	if h.Model().Overlay() != before || before.Phase() != overlay.PhaseOpening {
		t.Fatalf("opening overlay must keep animating, got %s", before.Phase())
	}
	h.Settle()
	if before.Phase() != overlay.PhaseOpen || before.ItemCount() != 3 {
		t.Fatalf("expected open with 3 items, got %s %d", before.Phase(), before.ItemCount())
	}
	for i := 0; i < 3; i++ {
		if it := before.Item(i); it.Lift != 0 || it.Number != 1 {
			t.Fatalf("item %d hidden after open settled: %+v", i, it)
		}
	}
}

func TestReloadErrorShowsStatus(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(backendEventMsg{event: backend.Event{Path: "menu.yaml", Err: errors.New("bad yaml")}})
	if !strings.Contains(h.View(), "Error: reload failed: bad yaml") {
		t.Fatalf("expected error status:\n%s", h.View())
	}
}

func TestActionErrorSurfaces(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(menu.ActionResult{Err: errors.New("boom")})
	if !strings.Contains(h.View(), "Error: boom") {
		t.Fatalf("expected error status:\n%s", h.View())
	}
}

func TestViewLinesFillWidth(t *testing.T) {
	for _, pos := range []overlay.Position{overlay.PositionLeft, overlay.PositionRight} {
		h := newTestHarness(t, func(o *Options) {
			o.Position = pos
			o.ShowFooter = true
			o.Session = menu.Session{SignedIn: true, Admin: true, DisplayName: "Ada Lovelace"}
		})
		h.Key("tab")
		for i := 0; i < 40; i++ {
			h.Advance(frameInterval * 3)
			lines := strings.Split(h.View(), "\n")
			if len(lines) != 24 {
				t.Fatalf("expected 24 lines, got %d", len(lines))
			}
			for n, line := range lines {
				if w := ansi.StringWidth(line); w != 80 {
					t.Fatalf("%s: line %d has width %d: %q", pos, n, w, line)
				}
			}
		}
	}
}
