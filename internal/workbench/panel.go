package workbench

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
)

// Area is the region of the window a panel docks into.
type Area int

const (
	AreaNavigation Area = iota
	AreaEditor
)

// Panel kinds reported through host.Editor.Kind.
const (
	KindProjects       = "ProjectsTabTopComponent"
	KindFavorites      = "FavoritesTopComponent"
	KindOutput         = "OutputTopComponent"
	KindEditor         = "EditorTopComponent"
	KindExternalEditor = "TmuxEditorTopComponent"
)

// Panel is a docked panel. It implements host.Editor; panels without a
// document report none.
type Panel struct {
	wb      *Workbench
	key     string
	id      string
	title   string
	kind    string
	area    Area
	content *Container
	showing bool

	tree *Tree
	file host.FileRef
	// source is the external pane backing an editor, if any.
	source string
}

func (p *Panel) Key() string { return p.key }

// ID is the host identifier the panel was opened under.
func (p *Panel) ID() string { return p.id }

func (p *Panel) Title() string { return p.title }

func (p *Panel) Kind() string { return p.kind }

func (p *Panel) Area() Area { return p.area }

func (p *Panel) Content() host.Container { return p.content }

// Container exposes the concrete content container.
func (p *Panel) Container() *Container { return p.content }

func (p *Panel) Showing() bool { return p.showing }

// RequestVisible activates the panel, opening it first when it was closed.
func (p *Panel) RequestVisible(ctx context.Context) {
	if p.wb == nil {
		return
	}
	p.wb.Activate(ctx, p)
}

func (p *Panel) Document() (host.FileRef, bool) {
	return p.file, !p.file.IsZero()
}

// Tree returns the panel's tree view, or nil before it has been built.
func (p *Panel) Tree() *Tree { return p.tree }

// Source returns the external pane id backing an editor panel.
func (p *Panel) Source() string { return p.source }
