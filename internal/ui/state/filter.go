package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery applies q as the list filter. The cursor position from before
// filtering is remembered and restored once the filter is cleared.
func (l *List) SetQuery(q Query) {
	wasFiltering := l.Filtering()
	q.Cursor = q.Pos()
	l.Query = q
	filtering := l.Filtering()
	restore := -1
	if filtering {
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	} else if wasFiltering {
		restore = l.LastCursor
	}
	l.applyFilter()
	if filtering && len(l.Items) > 0 {
		if idx := BestMatchIndex(l.Items, q.Trimmed()); idx >= 0 {
			l.Cursor = idx
		}
	}
	if !filtering && wasFiltering {
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

// ClearQuery drops the filter.
func (l *List) ClearQuery() bool {
	if l.Query.Text == "" {
		return false
	}
	l.SetQuery(Query{})
	return true
}

// Edit applies an edit to the filter and reports whether it changed.
func (l *List) Edit(edit func(Query) (Query, bool)) bool {
	next, ok := edit(l.Query)
	if !ok {
		return false
	}
	if next.Text == l.Query.Text {
		l.Query.Cursor = next.Pos()
		return true
	}
	l.SetQuery(next)
	return true
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Query.Text)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterItems returns items whose label fuzzily matches query, falling back
// to a substring match on the label. Identifiers are absolute paths and
// never take part in matching.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items)); len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among items: an exact
// label, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
