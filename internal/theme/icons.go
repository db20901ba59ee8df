package theme

import (
	"embed"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

//go:embed icons/*.glyph
var iconFS embed.FS

// Icon is a single-cell glyph drawn on a button.
type Icon struct {
	Name  string
	Glyph string
	// Placeholder is set when the named icon could not be loaded.
	Placeholder bool
}

const placeholderGlyph = "□"

// Icon names used by the overlay and the editor toolbar.
const (
	IconCollapseTree      = "icons/collapseTree.svg"
	IconSyncWithEditor    = "icons/syncWithCodeEditor.svg"
	IconSelectInFavorites = "icons/selectInFavorites.svg"
)

// LoadIcon reads the glyph stored for name. The extension of name is
// ignored so asset names can stay close to their vector originals.
func LoadIcon(name string) (Icon, bool) {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base == "" || base == "." {
		return Icon{}, false
	}
	data, err := iconFS.ReadFile("icons/" + base + ".glyph")
	if err != nil {
		return Icon{}, false
	}
	glyph := strings.TrimSpace(string(data))
	if glyph == "" || !utf8.ValidString(glyph) {
		return Icon{}, false
	}
	return Icon{Name: name, Glyph: glyph}, true
}

// SafeIcon loads name and falls back to a placeholder box of at least
// size cells when the icon is missing.
func SafeIcon(name string, size int) Icon {
	if icon, ok := LoadIcon(name); ok {
		return icon
	}
	if size < 1 {
		size = 1
	}
	return Icon{Name: name, Glyph: strings.Repeat(placeholderGlyph, size), Placeholder: true}
}

// Render draws the icon with style applied; nil styles render the bare glyph.
func (i Icon) Render(style *lipgloss.Style) string {
	if style == nil {
		return i.Glyph
	}
	return style.Render(i.Glyph)
}
