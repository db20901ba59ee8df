package state

import "testing"

func newTestList(labels ...string) *List {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: "/w/" + label, Label: label, Row: i}
	}
	return NewList("test", "Test", items)
}

func TestMoveCursorClamps(t *testing.T) {
	l := newTestList("a", "b", "c")
	if l.MoveCursor(-1) {
		t.Fatalf("expected no movement above first item")
	}
	if !l.MoveCursor(5) || l.Cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor end, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 4
	if empty.MoveCursor(1) {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPage(1, 2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPage(1, 2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPage(1, 2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPage(-1, 10) || l.Cursor != 0 {
		t.Fatalf("expected cursor back at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset normalised, got %d/%d", l.Cursor, l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}

func TestVisibleWindowFollowsCursor(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 3
	items, start := l.Visible(2)
	if start != 2 || len(items) != 2 || items[1].Label != "d" {
		t.Fatalf("unexpected window start=%d items=%#v", start, items)
	}
	items, start = l.Visible(0)
	if start != 0 || len(items) != 5 {
		t.Fatalf("expected full list without a height limit")
	}
}
