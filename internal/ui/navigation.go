package ui

import (
	"fmt"

	"github.com/atomicstack/navsync/internal/logging"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/overlay"
	uistate "github.com/atomicstack/navsync/internal/ui/state"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), m.navID())
	switch m.mode {
	case ModeFilter:
		return m.handleFilterKey(keyMsg)
	case ModeMenu:
		return m.handleMenuKey(keyMsg)
	}
	return m.handleTreeKey(keyMsg)
}

func (m *Model) handleTreeKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Next):
		m.wb.Cycle(m.ctx(), 1)
	case key.Matches(msg, k.Prev):
		m.wb.Cycle(m.ctx(), -1)
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.PageUp):
		m.moveCursorPage(-1)
	case key.Matches(msg, k.PageDown):
		m.moveCursorPage(1)
	case key.Matches(msg, k.Home):
		m.withNavList(func(l *uistate.List) bool { return l.MoveCursorHome() })
	case key.Matches(msg, k.End):
		m.withNavList(func(l *uistate.List) bool { return l.MoveCursorEnd() })
	case key.Matches(msg, k.Toggle):
		m.toggleSelected()
	case key.Matches(msg, k.Menu):
		m.openMenu()
	case key.Matches(msg, k.Close):
		m.closeActive()
	case key.Matches(msg, k.Collapse):
		m.clickOverlay(overlay.ButtonCollapse)
	case key.Matches(msg, k.Sync):
		m.clickOverlay(overlay.ButtonSync)
	case key.Matches(msg, k.Favorite):
		m.clickToolbar()
	case key.Matches(msg, k.Filter):
		if m.navList() != nil {
			m.mode = ModeFilter
			m.filterCursorDirty = true
		}
	case key.Matches(msg, k.Edit):
		m.editSelected()
	case key.Matches(msg, k.Back):
		if l := m.navList(); l != nil && l.ClearQuery() {
			events.Filter.Cleared(l.ID)
		}
	}
	return nil
}

// navPanel returns the showing navigation panel.
func (m *Model) navPanel() *workbench.Panel {
	return m.wb.Selected(workbench.AreaNavigation)
}

func (m *Model) navID() string {
	if p := m.navPanel(); p != nil {
		return p.ID()
	}
	return ""
}

func (m *Model) navTree() *workbench.Tree {
	if p := m.navPanel(); p != nil {
		return p.Tree()
	}
	return nil
}

// navList returns the list state of the showing navigation panel, or nil
// when that panel has no tree.
func (m *Model) navList() *uistate.List {
	p := m.navPanel()
	if p == nil || p.Tree() == nil {
		return nil
	}
	return m.lists[p.ID()]
}

// syncLists mirrors the tree rows of every open navigation panel into its
// list. Without a filter the list cursor follows the tree cursor.
func (m *Model) syncLists() {
	live := make(map[string]bool)
	for _, p := range m.wb.Panels(workbench.AreaNavigation) {
		tree := p.Tree()
		if tree == nil {
			continue
		}
		live[p.ID()] = true
		l, ok := m.lists[p.ID()]
		if !ok {
			l = uistate.NewList(p.ID(), p.Title(), nil)
			m.lists[p.ID()] = l
		}
		l.UpdateItems(treeItems(tree))
		if !l.Filtering() {
			l.Cursor = tree.Cursor()
		}
	}
	for id := range m.lists {
		if !live[id] {
			delete(m.lists, id)
		}
	}
	if m.mode == ModeFilter && m.navList() == nil {
		m.mode = ModeTree
	}
}

func treeItems(tree *workbench.Tree) []uistate.Item {
	rows := tree.Rows()
	items := make([]uistate.Item, len(rows))
	for i, row := range rows {
		items[i] = uistate.Item{
			ID:       row.Entry.Path,
			Label:    row.Entry.Name,
			Depth:    row.Depth,
			Dir:      row.Entry.Dir,
			Expanded: row.Expanded,
			Row:      i,
		}
	}
	return items
}

// withNavList applies move to the navigation list and, when no filter is
// active, copies the new cursor back into the tree.
func (m *Model) withNavList(move func(l *uistate.List) bool) {
	l := m.navList()
	if l == nil || !move(l) {
		return
	}
	if !l.Filtering() {
		m.navTree().SetCursor(l.Cursor)
	}
	events.UI.Cursor(l.ID, l.Cursor)
}

func (m *Model) moveCursor(delta int) {
	m.withNavList(func(l *uistate.List) bool { return l.MoveCursor(delta) })
}

func (m *Model) moveCursorPage(pages int) {
	rows := m.treeRowsVisible()
	m.withNavList(func(l *uistate.List) bool { return l.MoveCursorPage(pages, rows) })
}

// toggleSelected expands or collapses the directory under the cursor and
// opens files in an editor.
func (m *Model) toggleSelected() {
	l := m.navList()
	tree := m.navTree()
	if l == nil || tree == nil {
		return
	}
	item, ok := l.Current()
	if !ok {
		return
	}
	if !item.Dir {
		m.openEditor(item.ID)
		return
	}
	tree.SetCursor(item.Row)
	tree.Toggle(item.Row)
}

func (m *Model) editSelected() {
	l := m.navList()
	if l == nil {
		return
	}
	item, ok := l.Current()
	if !ok || item.Dir {
		return
	}
	m.openEditor(item.ID)
}

func (m *Model) openEditor(path string) {
	events.UI.OpenEditor(path)
	m.wb.OpenEditor(m.ctx(), path)
	if m.verbose {
		m.setInfo(fmt.Sprintf("Opened %s", path))
	}
}

func (m *Model) closeActive() {
	active := m.wb.Active()
	if active == nil {
		active = m.navPanel()
	}
	if active == nil {
		return
	}
	m.wb.Close(m.ctx(), active)
}

// surface returns the overlay installed on the showing navigation panel.
func (m *Model) surface() *overlay.Surface {
	tree := m.navTree()
	if tree == nil {
		return nil
	}
	s, _ := tree.Header().(*overlay.Surface)
	return s
}

func (m *Model) clickOverlay(name string) {
	s := m.surface()
	if s == nil {
		return
	}
	events.UI.Click(s.PanelID, name)
	if l := m.navList(); l != nil && l.ClearQuery() {
		events.Filter.Cleared(l.ID)
	}
	s.Click(m.ctx(), name)
}

func (m *Model) clickToolbar() {
	buttons := m.toolbarButtons()
	if len(buttons) == 0 {
		return
	}
	b := buttons[0]
	if !b.Enabled {
		if m.verbose {
			m.setInfo(b.Tooltip + " is unavailable")
		}
		return
	}
	b.Click(m.ctx())
}

func (m *Model) openMenu() {
	descriptors := workbench.Catalogue()
	items := make([]uistate.Item, len(descriptors))
	for i, d := range descriptors {
		items[i] = uistate.Item{ID: d.ID, Label: d.Title, Row: -1}
	}
	m.menu = uistate.NewList("menu", "Open panel", items)
	m.mode = ModeMenu
	m.filterCursorDirty = true
}

func (m *Model) closeMenu() {
	m.menu = nil
	m.mode = ModeTree
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if m.menu == nil {
		m.closeMenu()
		return nil
	}
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.closeMenu()
		return nil
	case msg.Type == tea.KeyEnter:
		item, ok := m.menu.Current()
		m.closeMenu()
		if !ok {
			return nil
		}
		if _, err := m.wb.ActivateID(m.ctx(), item.ID); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		return nil
	case msg.Type == tea.KeyUp:
		m.menu.MoveCursor(-1)
		return nil
	case msg.Type == tea.KeyDown:
		m.menu.MoveCursor(1)
		return nil
	}
	m.handleTextInput(m.menu, msg)
	return nil
}
