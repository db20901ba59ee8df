package ui

import (
	"unicode"

	"github.com/atomicstack/navsync/internal/logging/events"
	uistate "github.com/atomicstack/navsync/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleFilterKey edits the tree filter. Enter selects the highlighted row
// in the tree and leaves filter mode; esc drops the filter.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	l := m.navList()
	if l == nil {
		m.mode = ModeTree
		return nil
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		l.ClearQuery()
		events.Filter.Cleared(l.ID)
		m.mode = ModeTree
		return nil
	case tea.KeyEnter:
		item, ok := l.Current()
		l.ClearQuery()
		m.mode = ModeTree
		if ok {
			m.navTree().Select(item.ID)
		}
		return nil
	case tea.KeyUp:
		l.MoveCursor(-1)
		return nil
	case tea.KeyDown:
		l.MoveCursor(1)
		return nil
	}
	m.handleTextInput(l, msg)
	return nil
}

// handleTextInput applies line-editing keys to the query of l.
func (m *Model) handleTextInput(l *uistate.List, msg tea.KeyMsg) bool {
	var edit func(uistate.Query) (uistate.Query, bool)
	switch msg.String() {
	case "ctrl+u":
		edit = func(uistate.Query) (uistate.Query, bool) { return uistate.Query{}, l.Query.Text != "" }
	case "ctrl+w":
		edit = uistate.Query.DeleteWord
	case "ctrl+a":
		edit = motion(uistate.MotionStart)
	case "ctrl+e":
		edit = motion(uistate.MotionEnd)
	case "alt+b":
		edit = motion(uistate.MotionWordBackward)
	case "alt+f":
		edit = motion(uistate.MotionWordForward)
	}
	if edit == nil {
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			edit = uistate.Query.DeleteRune
		case tea.KeyLeft:
			edit = motion(uistate.MotionRuneBackward)
		case tea.KeyRight:
			edit = motion(uistate.MotionRuneForward)
		case tea.KeySpace:
			edit = insert(" ")
		case tea.KeyRunes:
			if msg.Alt || !printable(msg.Runes) {
				return false
			}
			edit = insert(string(msg.Runes))
		}
	}
	if edit == nil {
		return false
	}
	before := l.Query.Pos()
	if !l.Edit(edit) {
		return false
	}
	if before != l.Query.Pos() {
		m.filterCursorDirty = true
	}
	m.errMsg = ""
	m.forceClearInfo()
	if l.Filter() == "" {
		events.Filter.Cleared(l.ID)
	} else {
		events.Filter.Set(l.ID, l.Filter())
	}
	return true
}

func motion(unit uistate.Motion) func(uistate.Query) (uistate.Query, bool) {
	return func(q uistate.Query) (uistate.Query, bool) { return q.Move(unit) }
}

func insert(text string) func(uistate.Query) (uistate.Query, bool) {
	return func(q uistate.Query) (uistate.Query, bool) { return q.Insert(text) }
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// filterPrompt renders the query of l with the blinking caret.
func (m *Model) filterPrompt(l *uistate.List, label string) string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := label + "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if l == nil {
		return prompt
	}
	text := l.Filter()
	if text == "" {
		placeholder := []rune("(type to search)")
		return prompt + m.renderFilterCursor(string(placeholder[0]), styles.FilterPlaceholder) +
			render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := l.Query.Pos()
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + render(styles.Filter, string(runes[:pos])) +
		m.renderFilterCursor(caret, styles.Filter) + render(styles.Filter, after)
}

func (m *Model) renderFilterCursor(char string, text *lipgloss.Style) string {
	m.filterCursor.SetChar(char)
	base := lipgloss.NewStyle()
	if text != nil {
		base = text.Copy()
	}
	base = base.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
