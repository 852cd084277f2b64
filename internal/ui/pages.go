package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/staggered-menu/internal/format/table"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/route"
)

// page returns the title and body lines shown for the current path.
func (m *Model) page() (string, []string) {
	path := m.router.Current()
	switch path {
	case route.Home:
		lines := []string{
			"Browse the catalogue, open a section, or sign in to see more.",
			fmt.Sprintf("Press tab or click %q to open the navigation.", m.opts.OpenLabel),
		}
		if sitemap := m.sitemap(); len(sitemap) > 0 {
			lines = append(lines, "")
			lines = append(lines, sitemap...)
		}
		return "Welcome to the " + m.opts.Logo, lines
	case menu.AuthPath:
		if m.session.SignedIn {
			return "Account", []string{fmt.Sprintf("You are signed in as %s.", m.session.Name())}
		}
		name := m.opts.Session.DisplayName
		if name == "" {
			name = "Reader"
		}
		return "Sign in", []string{fmt.Sprintf("Press enter to sign in as %s.", name)}
	}
	if title, ok := m.titleFor(path); ok {
		return title, []string{fmt.Sprintf("You are viewing %s.", title), "Press backspace to go back."}
	}
	return "Not found", []string{fmt.Sprintf("Nothing lives at %s.", path)}
}

// titleFor finds the label of the configured link that owns path, preferring
// the most specific match.
func (m *Model) titleFor(path string) (string, bool) {
	title, best := "", -1
	consider := func(label, link string) {
		if link == "" || link == route.Home || !route.Matches(path, link) {
			return
		}
		if len(link) > best {
			title, best = label, len(link)
		}
	}
	for _, item := range m.opts.Items {
		consider(item.Label, item.Link)
		for _, sub := range item.Submenu {
			consider(sub.Label, sub.Link)
		}
	}
	return title, best >= 0
}

// sitemap lists the items visible to the current session with their index
// and destination.
func (m *Model) sitemap() []string {
	rows := make([][]string, 0, len(m.visible))
	for i, item := range m.visible {
		dest := item.Link
		if item.HasSubmenu() {
			dest = strconv.Itoa(len(item.Submenu)) + " links"
		}
		rows = append(rows, []string{strconv.Itoa(i+1) + ".", item.Label, dest})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft})
}
