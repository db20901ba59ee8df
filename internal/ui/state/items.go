package state

// Item is one row of a list: a tree row of a navigation panel or an entry of
// the panel menu.
type Item struct {
	// ID is the file path for tree rows and the panel identifier in menus.
	ID       string
	Label    string
	Depth    int
	Dir      bool
	Expanded bool
	// Row is the index of the backing tree row, or -1.
	Row int
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
