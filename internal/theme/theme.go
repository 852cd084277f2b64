package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header     *lipgloss.Style
	Logo       *lipgloss.Style
	Body       *lipgloss.Style
	BodyDim    *lipgloss.Style
	Panel      *lipgloss.Style
	Item       *lipgloss.Style
	ItemActive *lipgloss.Style
	ItemTilted *lipgloss.Style
	Selected   *lipgloss.Style
	Number     *lipgloss.Style
	NumberDim  *lipgloss.Style
	SubItem    *lipgloss.Style
	User       *lipgloss.Style
	Avatar     *lipgloss.Style
	Action     *lipgloss.Style
	Error      *lipgloss.Style
	Info       *lipgloss.Style
	Footer     *lipgloss.Style
}

// Palette holds the base colours a style set is derived from.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Faint      lipgloss.Color
	Surface    lipgloss.Color
}

var (
	darkPalette = Palette{
		Background: lipgloss.Color("#111111"),
		Foreground: lipgloss.Color("#f5f5f5"),
		Muted:      lipgloss.Color("245"),
		Faint:      lipgloss.Color("238"),
		Surface:    lipgloss.Color("#1d1d1f"),
	}
	lightPalette = Palette{
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#111111"),
		Muted:      lipgloss.Color("242"),
		Faint:      lipgloss.Color("250"),
		Surface:    lipgloss.Color("#f2f2f2"),
	}
)

// DefaultAccent is used when no accent colour is configured.
const DefaultAccent = "#5227FF"

// New builds the style set for the given palette mode and accent colour.
func New(dark bool, accent string) *Styles {
	if accent == "" {
		accent = DefaultAccent
	}
	p := lightPalette
	if dark {
		p = darkPalette
	}
	a := lipgloss.Color(accent)
	return &Styles{
		Header: ptr(
			lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		),
		Logo: ptr(
			lipgloss.NewStyle().Foreground(a).Bold(true),
		),
		Body: ptr(
			lipgloss.NewStyle().Foreground(p.Foreground),
		),
		BodyDim: ptr(
			lipgloss.NewStyle().Foreground(p.Faint),
		),
		Panel: ptr(
			lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface).Bold(true),
		),
		ItemActive: ptr(
			lipgloss.NewStyle().Foreground(a).Background(p.Surface).Bold(true),
		),
		ItemTilted: ptr(
			lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface).Italic(true),
		),
		Selected: ptr(
			lipgloss.NewStyle().Foreground(p.Background).Background(a).Bold(true),
		),
		Number: ptr(
			lipgloss.NewStyle().Foreground(a).Background(p.Surface),
		),
		NumberDim: ptr(
			lipgloss.NewStyle().Foreground(p.Faint).Background(p.Surface),
		),
		SubItem: ptr(
			lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface),
		),
		User: ptr(
			lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface),
		),
		Avatar: ptr(
			lipgloss.NewStyle().Foreground(p.Background).Background(a).Bold(true),
		),
		Action: ptr(
			lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(p.Muted),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(p.Muted),
		),
	}
}

// Default exposes the dark style set with the default accent.
func Default() *Styles {
	return New(true, DefaultAccent)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
