package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AppendQuery extends the type-to-jump query and moves the cursor to the best
// match. It reports whether anything matched.
func (p *Panel) AppendQuery(text string) bool {
	if text == "" {
		return false
	}
	p.Query += text
	return p.jump()
}

// TrimQuery drops the last rune of the query.
func (p *Panel) TrimQuery() bool {
	runes := []rune(p.Query)
	if len(runes) == 0 {
		return false
	}
	p.Query = string(runes[:len(runes)-1])
	if p.Query != "" {
		p.jump()
	}
	return true
}

// ClearQuery resets the query without moving the cursor.
func (p *Panel) ClearQuery() {
	p.Query = ""
}

func (p *Panel) jump() bool {
	idx := BestMatchIndex(p.Entries, p.Query)
	if idx < 0 {
		return false
	}
	p.Cursor = idx
	return true
}

// BestMatchIndex returns the entry that best matches query: an exact label,
// then a label prefix, then a substring, then the closest fuzzy match.
func BestMatchIndex(entries []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(entries) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, e := range entries {
		if strings.EqualFold(e.Label, trimmed) {
			return i
		}
	}
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Label), lower) {
			return i
		}
	}
	for i, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
