package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/navsync/internal/format/table"
	uistate "github.com/atomicstack/navsync/internal/ui/state"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	navMinWidth   = 24
	navFraction   = 0.4
	columnGap     = " │ "
)

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// View implements tea.Model.
func (m *Model) View() string {
	m.zones = m.zones[:0]
	width, height := m.size()

	bottom := m.bottomLines(width)
	bodyH := height - 1 - len(bottom)
	if bodyH < 2 {
		bodyH = 2
	}

	rows := []string{fitLine(m.renderTabs(), width)}
	if m.mode == ModeMenu && m.menu != nil {
		rows = append(rows, m.renderMenu(width, bodyH)...)
	} else {
		rows = append(rows, m.renderBody(width, bodyH)...)
	}
	rows = append(rows, bottom...)
	return strings.Join(rows, "\n")
}

func (m *Model) renderTabs() string {
	active := m.wb.Active()
	parts := make([]string, 0, 8)
	for _, hp := range m.wb.Opened() {
		p, ok := hp.(*workbench.Panel)
		if !ok {
			continue
		}
		style := styles.Tab
		if p == active {
			style = styles.ActiveTab
		}
		parts = append(parts, render(style, p.Title()))
	}
	if len(parts) == 0 {
		return render(styles.Info, "(no panels open; press o)")
	}
	return strings.Join(parts, "")
}

// renderBody draws the navigation column and, when an editor is showing, the
// editor column next to it. Rows start at screen row 1.
func (m *Model) renderBody(width, height int) []string {
	editor := m.wb.Selected(workbench.AreaEditor)
	navW := width
	if editor != nil {
		navW = int(float64(width) * navFraction)
		if navW < navMinWidth {
			navW = navMinWidth
		}
		if navW > width-lipgloss.Width(columnGap)-1 {
			editor = nil
			navW = width
		}
	}
	nav := m.renderNav(navW, height)
	if editor == nil {
		return nav
	}
	edX := navW + lipgloss.Width(columnGap)
	ed := m.renderEditor(editor, width-edX, height, edX)
	gap := render(styles.Footer, columnGap)
	out := make([]string, height)
	for i := range out {
		out[i] = nav[i] + gap + ed[i]
	}
	return out
}

func (m *Model) renderNav(width, height int) []string {
	lines := make([]string, 0, height)
	p := m.navPanel()
	if p == nil {
		lines = append(lines, render(styles.Info, "No navigation panel open."))
		return fitBlock(lines, width, height)
	}
	lines = append(lines, m.renderNavHeader(p, width))
	tree := p.Tree()
	if tree == nil {
		for _, child := range p.Container().Children() {
			if label, ok := child.(workbench.Label); ok {
				lines = append(lines, render(styles.Info, string(label)))
			}
		}
		if len(lines) == 1 {
			lines = append(lines, render(styles.Info, "(empty)"))
		}
		return fitBlock(lines, width, height)
	}
	l := m.lists[p.ID()]
	if l == nil {
		return fitBlock(lines, width, height)
	}
	if len(l.Items) == 0 {
		msg := "(no entries)"
		if l.Filtering() {
			msg = fmt.Sprintf("No matches for %q", l.Filter())
		}
		lines = append(lines, render(styles.Info, msg))
		return fitBlock(lines, width, height)
	}
	visible, start := l.Visible(height - 1)
	for i, item := range visible {
		lines = append(lines, renderRow(item, start+i == l.Cursor, width))
	}
	return fitBlock(lines, width, height)
}

// renderNavHeader draws the panel title and the overlay buttons aligned to
// the right edge, recording their zones for mouse handling.
func (m *Model) renderNavHeader(p *workbench.Panel, width int) string {
	title := render(styles.Header, p.Title())
	s := m.surface()
	if s == nil {
		return title
	}
	buttons := make([]string, len(s.Buttons))
	total := 0
	for i, b := range s.Buttons {
		style := styles.OverlayButton
		if s.Hover() == b.Name {
			style = styles.OverlayHover
		}
		buttons[i] = b.Icon.Render(style)
		total += lipgloss.Width(buttons[i])
	}
	x := width - total
	gap := x - lipgloss.Width(title)
	if gap < 1 {
		return title
	}
	for i, b := range s.Buttons {
		w := lipgloss.Width(buttons[i])
		m.zones = append(m.zones, buttonZone{x0: x, x1: x + w, y: 1, surface: s, name: b.Name})
		x += w
	}
	return title + strings.Repeat(" ", gap) + strings.Join(buttons, "")
}

func renderRow(item uistate.Item, selected bool, width int) string {
	marker := "  "
	if item.Dir {
		marker = "▸ "
		if item.Expanded {
			marker = "▾ "
		}
	}
	text := strings.Repeat("  ", item.Depth) + marker + item.Label
	style := styles.Row
	switch {
	case selected:
		style = styles.SelectedRow
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	case item.Dir:
		style = styles.DirRow
	}
	return render(style, truncateText(text, width))
}

func (m *Model) renderEditor(p *workbench.Panel, width, height, x int) []string {
	lines := make([]string, 0, height)
	var bar []string
	buttons := m.toolbarButtons()
	for i, b := range buttons {
		style := styles.ToolbarButton
		text := b.Icon.Glyph
		if !b.Delegated {
			style = styles.ToolbarFallback
			text = b.Label
		}
		if !b.Enabled {
			style = styles.Footer
		}
		rendered := render(style, text)
		w := lipgloss.Width(rendered)
		m.zones = append(m.zones, buttonZone{x0: x, x1: x + w, y: 1, tool: &buttons[i]})
		x += w
		bar = append(bar, rendered)
	}
	header := render(styles.EditorTitle, p.Title())
	if len(bar) > 0 {
		header = strings.Join(bar, "") + " " + header
	}
	lines = append(lines, header)
	file, ok := p.Document()
	body := m.editors[file.Path]
	switch {
	case !ok:
		lines = append(lines, render(styles.Info, "(no document)"))
	case body == nil || body.loading:
		lines = append(lines, render(styles.Info, "Loading…"))
	case body.err != "":
		lines = append(lines, render(styles.Error, body.err))
	default:
		for _, line := range body.lines {
			if len(lines) >= height {
				break
			}
			lines = append(lines, render(styles.EditorBody, truncateText(line, width)))
		}
	}
	return fitBlock(lines, width, height)
}

func (m *Model) renderMenu(width, height int) []string {
	lines := []string{render(styles.Header, m.menu.Title)}
	labels := m.menuLabels()
	visible, start := m.menu.Visible(height - 1)
	for i, item := range visible {
		lines = append(lines, renderRow(uistate.Item{Label: labels[item.ID]}, start+i == m.menu.Cursor, width))
	}
	if len(visible) == 0 {
		lines = append(lines, render(styles.Info, fmt.Sprintf("No matches for %q", m.menu.Filter())))
	}
	return fitBlock(lines, width, height)
}

// menuLabels lays out every catalogue entry with its open state so the
// columns stay aligned while the menu is filtered.
func (m *Model) menuLabels() map[string]string {
	active := m.wb.Active()
	rows := make([][]string, len(m.menu.Full))
	for i, item := range m.menu.Full {
		state := ""
		switch p := m.wb.Panel(item.ID); {
		case p == nil:
		case p == active:
			state = "active"
		default:
			state = "open"
		}
		rows[i] = []string{item.Label, state}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	labels := make(map[string]string, len(formatted))
	for i, item := range m.menu.Full {
		labels[item.ID] = formatted[i]
	}
	return labels
}

func (m *Model) bottomLines(width int) []string {
	var lines []string
	status := ""
	switch {
	case m.errMsg != "":
		status = render(styles.Error, "Error: "+m.errMsg)
	case m.backendLastErr != "":
		status = render(styles.Error, "Backend: "+m.backendLastErr)
	default:
		if info := m.currentInfo(); info != "" {
			status = render(styles.Info, info)
		}
	}
	lines = append(lines, fitLine(status, width))
	switch m.mode {
	case ModeFilter:
		lines = append(lines, fitLine(m.filterPrompt(m.navList(), ""), width))
	case ModeMenu:
		lines = append(lines, fitLine(m.filterPrompt(m.menu, "open "), width))
	}
	if m.showFooter {
		lines = append(lines, fitLine(render(styles.Footer, m.keys.footerHelp()), width))
	}
	return lines
}

// treeRowsVisible is the number of tree rows the navigation column shows.
func (m *Model) treeRowsVisible() int {
	width, height := m.size()
	rows := height - 2 - len(m.bottomLines(width))
	if rows < 1 {
		return 1
	}
	return rows
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// fitLine pads or truncates a rendered line to exactly width cells.
func fitLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		return truncate.StringWithTail(line, uint(width-1), "…")
	}
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// fitBlock fits lines into a width x height block.
func fitBlock(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitLine(line, width)
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
