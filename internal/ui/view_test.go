package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlayAtClipsAndPreserves(t *testing.T) {
	base := "abcdefghij"
	tests := []struct {
		top  string
		x    int
		want string
	}{
		{"XYZ", 2, "abXYZfghij"},
		{"XYZ", -1, "YZcdefghij"},
		{"XYZ", 8, "abcdefghXY"},
		{"XYZ", 10, "abcdefghij"},
		{"XYZ", -3, "abcdefghij"},
	}
	for _, tt := range tests {
		if got := overlayAt(base, tt.top, tt.x, 10); got != tt.want {
			t.Fatalf("overlayAt(%q, %d) = %q, want %q", tt.top, tt.x, got, tt.want)
		}
	}
}

func TestOverlayAtKeepsStyledBase(t *testing.T) {
	got := overlayAt("\x1b[1mbold\x1b[0m text", "__", 4, 12)
	if w := ansi.StringWidth(got); w != 12 {
		t.Fatalf("expected width 12, got %d", w)
	}
	if plain := ansi.Strip(got); plain != "bold__ext   " {
		t.Fatalf("unexpected composite %q", plain)
	}
	if !strings.HasPrefix(got, "\x1b[1m") {
		t.Fatalf("expected styling of the base to survive, got %q", got)
	}
}

func TestShiftCols(t *testing.T) {
	if shiftCols(100, 30) != 30 || shiftCols(-100, 30) != -30 || shiftCols(0, 30) != 0 {
		t.Fatalf("unexpected column shift")
	}
	if shiftCols(50, 31) != 16 {
		t.Fatalf("expected rounding, got %d", shiftCols(50, 31))
	}
}

func TestIconGlyphFollowsRotation(t *testing.T) {
	if iconGlyph(0) != "+" || iconGlyph(100) != "*" || iconGlyph(225) != "x" {
		t.Fatalf("unexpected glyphs")
	}
}

func TestClosedViewHidesPanel(t *testing.T) {
	h := newTestHarness(t, nil)
	view := h.View()
	if strings.Contains(view, "Theme:") {
		t.Fatalf("closed overlay should be off-screen:\n%s", view)
	}
	if !strings.Contains(view, "Menu +") || !strings.Contains(view, "Library") {
		t.Fatalf("expected header with logo and toggle:\n%s", view)
	}
}

func TestOpenViewShowsNumbersAndCloseLabel(t *testing.T) {
	h := newTestHarness(t, nil)
	openSettled(t, h)
	view := h.View()
	for _, want := range []string{"01", "02", "Close x"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestNumberingDisabledHidesNumbers(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.Numbering = false })
	openSettled(t, h)
	if strings.Contains(h.View(), "01") {
		t.Fatalf("numbers should be hidden:\n%s", h.View())
	}
}

func TestItemsHiddenBeforeReveal(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.StartPath = "/auth" })
	h.Key("tab")
	h.Advance(frameInterval)
	if strings.Contains(h.View(), "Books") {
		t.Fatalf("item labels should still be below the fold on the first frame")
	}
}

func TestHomePageListsVisibleItems(t *testing.T) {
	h := newTestHarness(t, nil)
	view := ansi.Strip(h.View())
	if !strings.Contains(view, "1.  Home   /") || !strings.Contains(view, "2.  Books  /books") {
		t.Fatalf("expected sitemap on the home page:\n%s", view)
	}
	if strings.Contains(view, "Favorites") {
		t.Fatalf("sitemap should follow the session:\n%s", view)
	}
}
