package ui

import (
	"github.com/atomicstack/navsync/internal/overlay"
	"github.com/atomicstack/navsync/internal/toolbar"
	tea "github.com/charmbracelet/bubbletea"
)

// buttonZone records where a button was drawn by the last View.
type buttonZone struct {
	x0, x1, y int
	surface   *overlay.Surface
	name      string
	tool      *toolbar.Button
}

func (z buttonZone) contains(x, y int) bool {
	return y == z.y && x >= z.x0 && x < z.x1
}

func (m *Model) zoneAt(x, y int) (buttonZone, bool) {
	for _, z := range m.zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return buttonZone{}, false
}

// handleMouseMsg highlights overlay buttons under the pointer and clicks
// buttons on a left press.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	z, hit := m.zoneAt(ev.X, ev.Y)
	if s := m.surface(); s != nil {
		if hit && z.surface == s {
			s.SetHover(z.name)
		} else {
			s.SetHover("")
		}
	}
	if !hit || ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if z.surface != nil {
		m.clickOverlay(z.name)
		return nil
	}
	if z.tool != nil && z.tool.Enabled {
		z.tool.Click(m.ctx())
	}
	return nil
}
