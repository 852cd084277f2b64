package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// padLine cuts or pads s to exactly width visible cells.
func padLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Cut(s, 0, width)
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// overlayAt paints top over base starting at column x. Both may carry ANSI
// styling; the part of top outside [0, width) is clipped.
func overlayAt(base, top string, x, width int) string {
	base = padLine(base, width)
	tw := ansi.StringWidth(top)
	if tw == 0 || x >= width || x+tw <= 0 {
		return base
	}
	if x < 0 {
		top = ansi.Cut(top, -x, tw)
		tw += x
		x = 0
	}
	if x+tw > width {
		top = ansi.Cut(top, 0, width-x)
		tw = width - x
	}
	return ansi.Cut(base, 0, x) + top + ansi.Cut(base, x+tw, width)
}

// shiftCols converts an offset in percent of span into whole cells.
func shiftCols(offset float64, span int) int {
	return int(math.Round(offset / 100 * float64(span)))
}
