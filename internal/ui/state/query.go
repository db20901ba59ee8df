package state

import (
	"strings"
	"unicode"
)

// Query is an editable line of filter text with a rune cursor.
type Query struct {
	Text   string
	Cursor int
}

// Blank reports whether the query holds only whitespace.
func (q Query) Blank() bool {
	return strings.TrimSpace(q.Text) == ""
}

// Trimmed returns the text without surrounding whitespace.
func (q Query) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// Pos returns the cursor clamped to the text.
func (q Query) Pos() int {
	n := len([]rune(q.Text))
	switch {
	case q.Cursor < 0:
		return 0
	case q.Cursor > n:
		return n
	}
	return q.Cursor
}

// Insert returns the query with text inserted at the cursor.
func (q Query) Insert(text string) (Query, bool) {
	insert := []rune(text)
	if len(insert) == 0 {
		return q, false
	}
	runes := []rune(q.Text)
	pos := q.Pos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	return Query{Text: string(updated), Cursor: pos + len(insert)}, true
}

// DeleteRune removes the rune before the cursor.
func (q Query) DeleteRune() (Query, bool) {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return q, false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	return Query{Text: string(updated), Cursor: pos - 1}, true
}

// DeleteWord removes the word before the cursor along with the whitespace
// that follows it.
func (q Query) DeleteWord() (Query, bool) {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return q, false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	return Query{Text: string(updated), Cursor: i}, true
}

// Move returns the query with its cursor moved by one step of unit.
func (q Query) Move(unit Motion) (Query, bool) {
	runes := []rune(q.Text)
	pos := q.Pos()
	next := pos
	switch unit {
	case MotionStart:
		next = 0
	case MotionEnd:
		next = len(runes)
	case MotionRuneBackward:
		if pos > 0 {
			next = pos - 1
		}
	case MotionRuneForward:
		if pos < len(runes) {
			next = pos + 1
		}
	case MotionWordBackward:
		next = wordStart(runes, pos)
	case MotionWordForward:
		next = wordEnd(runes, pos)
	}
	if next == pos {
		return q, false
	}
	return Query{Text: q.Text, Cursor: next}, true
}

// Motion names a cursor movement inside a Query.
type Motion int

const (
	MotionStart Motion = iota
	MotionEnd
	MotionRuneBackward
	MotionRuneForward
	MotionWordBackward
	MotionWordForward
)

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
