package ui

import (
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
)

// Option names shared by command-line flags and the menu file. A name listed
// in Options.Locked was set explicitly and survives menu file reloads.
const (
	OptLogo            = "logo"
	OptPosition        = "position"
	OptColors          = "colors"
	OptAccent          = "accent"
	OptButtonColor     = "button-color"
	OptOpenButtonColor = "button-open-color"
	OptColorOnOpen     = "color-on-open"
	OptClickAway       = "click-away"
	OptNumbering       = "numbering"
	OptOpenLabel       = "open-label"
	OptCloseLabel      = "close-label"
)

// Options configure the UI model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool

	Logo              string
	Position          overlay.Position
	Colors            []string
	AccentColor       string
	ButtonColor       string
	OpenButtonColor   string
	ChangeColorOnOpen bool
	CloseOnClickAway  bool
	Numbering         bool
	OpenLabel         string
	CloseLabel        string

	Items     []menu.Item
	StartPath string
	Session   menu.Session
	Dark      bool
	TimeScale float64

	Locked map[string]bool
}

// DefaultOptions returns the library navigation setup.
func DefaultOptions() Options {
	return Options{
		Logo:              "Library",
		Position:          overlay.PositionRight,
		Colors:            []string{"#B19EEF", "#5227FF"},
		AccentColor:       "#5227FF",
		ButtonColor:       "#f5f5f5",
		OpenButtonColor:   "#5227FF",
		ChangeColorOnOpen: true,
		CloseOnClickAway:  true,
		Numbering:         true,
		OpenLabel:         "Menu",
		CloseLabel:        "Close",
		Items:             menu.DefaultItems(),
		StartPath:         "/",
		Dark:              true,
		TimeScale:         1,
	}
}

// WithDocument overlays the values a menu file declares, skipping locked
// options.
func (o Options) WithDocument(doc menu.Document) Options {
	set := func(name string, ok bool) bool {
		return ok && !o.Locked[name]
	}
	if set(OptLogo, doc.Logo != "") {
		o.Logo = doc.Logo
	}
	if set(OptPosition, doc.Position != "") {
		if pos, err := overlay.ParsePosition(doc.Position); err == nil {
			o.Position = pos
		}
	}
	if set(OptColors, len(doc.Colors) > 0) {
		o.Colors = append([]string(nil), doc.Colors...)
	}
	if set(OptAccent, doc.AccentColor != "") {
		o.AccentColor = doc.AccentColor
	}
	if set(OptButtonColor, doc.MenuButtonColor != "") {
		o.ButtonColor = doc.MenuButtonColor
	}
	if set(OptOpenButtonColor, doc.OpenMenuButtonColor != "") {
		o.OpenButtonColor = doc.OpenMenuButtonColor
	}
	if set(OptColorOnOpen, doc.ChangeMenuColorOnOpen != nil) {
		o.ChangeColorOnOpen = *doc.ChangeMenuColorOnOpen
	}
	if set(OptClickAway, doc.CloseOnClickAway != nil) {
		o.CloseOnClickAway = *doc.CloseOnClickAway
	}
	if set(OptNumbering, doc.DisplayItemNumbering != nil) {
		o.Numbering = *doc.DisplayItemNumbering
	}
	if set(OptOpenLabel, doc.Labels.Open != "") {
		o.OpenLabel = doc.Labels.Open
	}
	if set(OptCloseLabel, doc.Labels.Close != "") {
		o.CloseLabel = doc.Labels.Close
	}
	if len(doc.Items) > 0 {
		o.Items = append([]menu.Item(nil), doc.Items...)
	}
	return o
}

func (o Options) overlayOptions(items int, pointer overlay.PointerSource) overlay.Options {
	return overlay.Options{
		Position:          o.Position,
		Layers:            len(o.Colors),
		Items:             items,
		ButtonColor:       o.ButtonColor,
		OpenButtonColor:   o.OpenButtonColor,
		ChangeColorOnOpen: o.ChangeColorOnOpen,
		CloseOnClickAway:  o.CloseOnClickAway,
		Numbering:         o.Numbering,
		OpenLabel:         o.OpenLabel,
		CloseLabel:        o.CloseLabel,
		Pointer:           pointer,
	}
}

// layerColors returns the colours of the revealed background layers.
func (o Options) layerColors() []string {
	if len(o.Colors) > overlay.MaxLayers {
		return o.Colors[:overlay.MaxLayers]
	}
	return o.Colors
}
