package resolver

import (
	"testing"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/stretchr/testify/assert"
)

func TestEditorScannerPrefersActivatedEditor(t *testing.T) {
	first := &fakeEditor{fakePanel: fakePanel{key: "a", showing: true}, kind: "EditorTopComponent", file: host.FileRef{Path: "/a.go"}}
	second := &fakeEditor{fakePanel: fakePanel{key: "b", showing: true}, kind: "MultiViewPeer", file: host.FileRef{Path: "/b.go"}}
	reg := &fakeRegistry{opened: []host.Panel{first, second}, activated: second}

	file, ok := NewEditorScanner(reg).ActiveFile()
	assert.True(t, ok)
	assert.Equal(t, "/b.go", file.Path)
}

func TestEditorScannerSkipsHiddenAndNonEditors(t *testing.T) {
	hidden := &fakeEditor{fakePanel: fakePanel{key: "a"}, kind: "EditorTopComponent", file: host.FileRef{Path: "/hidden.go"}}
	terminal := &fakeEditor{fakePanel: fakePanel{key: "t", showing: true}, kind: "TerminalTopComponent", file: host.FileRef{Path: "/term"}}
	shown := &fakeEditor{fakePanel: fakePanel{key: "c", showing: true}, kind: "tmux-editor", file: host.FileRef{Path: "/shown.go"}}
	plain := &fakePanel{key: "p", showing: true}
	reg := &fakeRegistry{opened: []host.Panel{plain, hidden, terminal, shown}, activated: plain}

	file, ok := NewEditorScanner(reg).ActiveFile()
	assert.True(t, ok)
	assert.Equal(t, "/shown.go", file.Path)
}

func TestEditorScannerNoEditors(t *testing.T) {
	_, ok := NewEditorScanner(&fakeRegistry{}).ActiveFile()
	assert.False(t, ok)
	var nilScanner *EditorScanner
	_, ok = nilScanner.ActiveFile()
	assert.False(t, ok)
}

func TestIsEditorKind(t *testing.T) {
	assert.True(t, IsEditorKind("EditorTopComponent"))
	assert.True(t, IsEditorKind("MultiViewPeer"))
	assert.True(t, IsEditorKind("tmux-editor"))
	assert.False(t, IsEditorKind("OutputTab"))
}
