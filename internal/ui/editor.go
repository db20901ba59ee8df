package ui

import (
	"bufio"
	"os"
	"strings"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging"
	"github.com/atomicstack/navsync/internal/toolbar"
	"github.com/atomicstack/navsync/internal/workbench"
	tea "github.com/charmbracelet/bubbletea"
)

const editorMaxLines = 500

type editorBody struct {
	lines   []string
	err     string
	loading bool
}

type editorLoadedMsg struct {
	path  string
	lines []string
	err   error
}

// presenter is implemented by toolbar actions that draw their own button.
type presenter interface {
	Presenter() toolbar.Button
}

// showingDocument returns the file of the showing editor.
func (m *Model) showingDocument() (*workbench.Panel, host.FileRef, bool) {
	p := m.wb.Selected(workbench.AreaEditor)
	if p == nil {
		return nil, host.FileRef{}, false
	}
	file, ok := p.Document()
	return p, file, ok
}

// ensureEditorLoaded starts loading the showing editor's file once.
func (m *Model) ensureEditorLoaded() tea.Cmd {
	_, file, ok := m.showingDocument()
	if !ok || file.IsZero() {
		return nil
	}
	if _, known := m.editors[file.Path]; known {
		return nil
	}
	m.editors[file.Path] = &editorBody{loading: true}
	return loadEditorCmd(file.Path)
}

func loadEditorCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := readLines(path, editorMaxLines)
		return editorLoadedMsg{path: path, lines: lines, err: err}
	}
}

func readLines(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < limit {
		lines = append(lines, strings.ReplaceAll(scanner.Text(), "\t", "    "))
	}
	return lines, scanner.Err()
}

func (m *Model) handleEditorLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(editorLoadedMsg)
	if !ok {
		return nil
	}
	body := &editorBody{lines: loaded.lines}
	if loaded.err != nil {
		logging.Error(loaded.err)
		body.err = loaded.err.Error()
	}
	m.editors[loaded.path] = body
	return nil
}

// toolbarButtons returns the editor toolbar buttons in position order.
func (m *Model) toolbarButtons() []toolbar.Button {
	entries := m.wb.Toolbar(toolbar.Path)
	buttons := make([]toolbar.Button, 0, len(entries))
	for _, entry := range entries {
		if p, ok := entry.Action.(presenter); ok {
			buttons = append(buttons, p.Presenter())
		}
	}
	return buttons
}
