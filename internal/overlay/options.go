package overlay

import "fmt"

// Position selects the screen edge the panel slides in from.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// ParsePosition accepts "left" or "right"; empty defaults to right.
func ParsePosition(s string) (Position, error) {
	switch Position(s) {
	case "", PositionRight:
		return PositionRight, nil
	case PositionLeft:
		return PositionLeft, nil
	}
	return "", fmt.Errorf("unknown position %q (want left or right)", s)
}

// Offscreen returns the resting offset (percent of panel width) of a hidden
// panel or layer.
func (p Position) Offscreen() float64 {
	if p == PositionLeft {
		return -100
	}
	return 100
}

// MaxLayers caps the number of background layers revealed behind the panel.
const MaxLayers = 2

// Options configure an overlay instance. Colour values are hex strings.
type Options struct {
	Position          Position
	Layers            int
	Items             int
	ButtonColor       string
	OpenButtonColor   string
	ChangeColorOnOpen bool
	CloseOnClickAway  bool
	Numbering         bool
	OpenLabel         string
	CloseLabel        string

	// Pointer is the document-level pointer source the click-away watcher
	// subscribes to while the overlay is open. Nil disables click-away.
	Pointer PointerSource

	// OnCommand observes every command the state machine dispatches.
	OnCommand func(Command)
}

func (o Options) normalized() Options {
	if o.Position == "" {
		o.Position = PositionRight
	}
	if o.Layers < 0 {
		o.Layers = 0
	}
	if o.Layers > MaxLayers {
		o.Layers = MaxLayers
	}
	if o.Items < 0 {
		o.Items = 0
	}
	if o.OpenLabel == "" {
		o.OpenLabel = "Menu"
	}
	if o.CloseLabel == "" {
		o.CloseLabel = "Close"
	}
	if o.ButtonColor == "" {
		o.ButtonColor = "#1d1d1f"
	}
	if o.OpenButtonColor == "" {
		o.OpenButtonColor = o.ButtonColor
	}
	return o
}

// Rect is a cell-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Command is a unit of work the state machine dispatches to a component.
type Command int

const (
	CmdOpenTimeline Command = iota
	CmdCloseTimeline
	CmdIcon
	CmdColor
	CmdText
	CmdAttachClickAway
	CmdDetachClickAway
)

func (c Command) String() string {
	switch c {
	case CmdOpenTimeline:
		return "open-timeline"
	case CmdCloseTimeline:
		return "close-timeline"
	case CmdIcon:
		return "icon"
	case CmdColor:
		return "color"
	case CmdText:
		return "text"
	case CmdAttachClickAway:
		return "attach-click-away"
	case CmdDetachClickAway:
		return "detach-click-away"
	default:
		return "unknown"
	}
}
