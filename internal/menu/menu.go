package menu

import (
	"sort"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Requirement gates an item on the authentication state.
type Requirement string

const (
	RequireNone     Requirement = ""
	RequireSignedIn Requirement = "signed-in"
	RequireAdmin    Requirement = "admin"
)

// SubItem is a leaf entry inside an expandable item.
type SubItem struct {
	Label string `yaml:"label"`
	Link  string `yaml:"link"`
	Icon  string `yaml:"icon,omitempty"`
}

// Item is a top-level panel entry. Items are immutable configuration.
type Item struct {
	Label    string      `yaml:"label"`
	Link     string      `yaml:"link"`
	Order    int         `yaml:"order,omitempty"`
	Requires Requirement `yaml:"requires,omitempty"`
	Submenu  []SubItem   `yaml:"submenu,omitempty"`
}

// HasSubmenu reports whether the item expands rather than navigates.
func (i Item) HasSubmenu() bool {
	return len(i.Submenu) > 0
}

// Session mirrors what the authentication collaborator exposes.
type Session struct {
	SignedIn    bool
	Admin       bool
	DisplayName string
}

// Allows reports whether items with requirement r are visible.
func (s Session) Allows(r Requirement) bool {
	switch r {
	case RequireNone:
		return true
	case RequireSignedIn:
		return s.SignedIn
	case RequireAdmin:
		return s.SignedIn && s.Admin
	default:
		return false
	}
}

// Initial returns the avatar letter for the display name.
func (s Session) Initial() string {
	for _, r := range strings.TrimSpace(s.DisplayName) {
		return string(unicode.ToUpper(r))
	}
	return "U"
}

// Name returns the display name or a generic fallback.
func (s Session) Name() string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}
	return "User"
}

// Visible filters items by session and orders them by Order, keeping
// configuration order for ties.
func Visible(items []Item, s Session) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if s.Allows(item.Requires) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Order < out[b].Order
	})
	return out
}

// Context carries the collaborator state actions need.
type Context struct {
	Session     Session
	CurrentPath string
}

// Action runs a panel action against target (usually a link) and returns the
// command that reports its outcome.
type Action func(ctx Context, target string) tea.Cmd

// ActionResult communicates the outcome of executing an action.
type ActionResult struct {
	Info string
	Err  error
}

// NavigateMsg asks the router to move to Path.
type NavigateMsg struct {
	Path string
}

// SessionMsg replaces the authentication state.
type SessionMsg struct {
	Session Session
}

// ThemeMsg switches between the light and dark palettes.
type ThemeMsg struct{}
