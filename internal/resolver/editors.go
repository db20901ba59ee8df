package resolver

import (
	"strings"

	"github.com/atomicstack/navsync/internal/host"
)

// EditorScanner implements host.Documents by scanning the open panels for a
// showing document editor.
type EditorScanner struct {
	registry host.Registry
}

func NewEditorScanner(registry host.Registry) *EditorScanner {
	return &EditorScanner{registry: registry}
}

// ActiveFile prefers the activated panel when it is an editor and otherwise
// returns the first showing editor in registry order.
func (s *EditorScanner) ActiveFile() (host.FileRef, bool) {
	if s == nil || s.registry == nil {
		return host.FileRef{}, false
	}
	if file, ok := editorFile(s.registry.Activated()); ok {
		return file, true
	}
	for _, p := range s.registry.Opened() {
		if file, ok := editorFile(p); ok {
			return file, true
		}
	}
	return host.FileRef{}, false
}

func editorFile(p host.Panel) (host.FileRef, bool) {
	ed, ok := p.(host.Editor)
	if !ok || ed == nil || !ed.Showing() || !IsEditorKind(ed.Kind()) {
		return host.FileRef{}, false
	}
	file, ok := ed.Document()
	if !ok || file.IsZero() {
		return host.FileRef{}, false
	}
	return file, true
}

// IsEditorKind reports whether an editor panel kind names a document editor.
func IsEditorKind(kind string) bool {
	lower := strings.ToLower(kind)
	return strings.Contains(lower, "editor") || strings.Contains(lower, "multiview")
}
