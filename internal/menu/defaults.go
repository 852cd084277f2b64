package menu

// DefaultItems returns the library's navigation menu.
func DefaultItems() []Item {
	return []Item{
		{Label: "Home", Link: "/", Order: 0},
		{Label: "Books", Link: "/books", Order: 1},
		{
			Label:    "Sections",
			Link:     "/sections/methodclub",
			Order:    2,
			Requires: RequireSignedIn,
			Submenu:  SectionItems(),
		},
		{Label: "Favorites", Link: "/favorites", Order: 3, Requires: RequireSignedIn},
		{Label: "Admin", Link: "/admin", Order: 4, Requires: RequireAdmin},
	}
}

// SectionItems lists the method club subsections.
func SectionItems() []SubItem {
	return []SubItem{
		{Label: "Method club", Link: "/sections/methodclub", Icon: "§"},
		{Label: "Pioneer work", Link: "/sections/pioneers", Icon: "*"},
		{Label: "School leaders", Link: "/sections/leaders", Icon: "&"},
		{Label: "Volunteers", Link: "/sections/volunteers", Icon: "+"},
		{Label: "School media", Link: "/sections/media", Icon: "@"},
		{Label: "Games", Link: "/sections/games", Icon: "#"},
		{Label: "Scenarios", Link: "/sections/scenarios", Icon: "~"},
		{Label: "Pioneer book", Link: "/sections/book", Icon: "="},
		{Label: "Exchange", Link: "/sections/exchange", Icon: "%"},
		{Label: "Contacts", Link: "/sections/contacts", Icon: "?"},
		{Label: "Calendar", Link: "/sections/calendar", Icon: ":"},
		{Label: "Documents", Link: "/sections/documents", Icon: "!"},
	}
}
