package state

// List holds the view state of one panel: the full item set, the filtered
// subset, the cursor and the viewport.
type List struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Query          Query
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList builds a list over items.
func NewList(id, title string, items []Item) *List {
	l := &List{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// Filter returns the raw filter text.
func (l *List) Filter() string {
	return l.Query.Text
}

// Filtering reports whether a non-blank filter is applied.
func (l *List) Filtering() bool {
	return !l.Query.Blank()
}

// IndexOf returns the position of id among the visible items.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the item set, re-applying the filter and keeping the
// viewport where it still fits.
func (l *List) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
