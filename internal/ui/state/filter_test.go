package state

import "testing"

func TestBestMatchIndexPrefersPrefix(t *testing.T) {
	entries := []Entry{{Label: "Home"}, {Label: "Books"}, {Label: "Favorites"}}
	tests := map[string]int{
		"books": 1,
		"fav":   2,
		"ome":   0,
		"fvs":   2,
		"":      -1,
		"zzz":   -1,
	}
	for query, want := range tests {
		if got := BestMatchIndex(entries, query); got != want {
			t.Fatalf("BestMatchIndex(%q) = %d, want %d", query, got, want)
		}
	}
}

func TestAppendQueryJumps(t *testing.T) {
	p := newTestPanel("Home", "Books", "Favorites")
	if !p.AppendQuery("f") || p.Cursor != 2 {
		t.Fatalf("expected jump to Favorites, got %d", p.Cursor)
	}
	if p.AppendQuery("q") {
		t.Fatalf("expected no match for fq")
	}
	if p.Cursor != 2 {
		t.Fatalf("cursor should stay when nothing matches")
	}
	if !p.TrimQuery() || p.Query != "f" {
		t.Fatalf("expected query trimmed to f, got %q", p.Query)
	}
	p.ClearQuery()
	if p.Query != "" || p.TrimQuery() {
		t.Fatalf("expected empty query")
	}
}
