package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	maxDepth   = 12
	maxEntries = 5000
)

// Entry is one node of a navigation tree.
type Entry struct {
	Name     string
	Path     string
	Dir      bool
	Children []*Entry
}

// Find returns the chain of entries from e down to the entry for path.
func (e *Entry) Find(path string) []*Entry {
	if e == nil {
		return nil
	}
	if e.Path == path {
		return []*Entry{e}
	}
	if !e.Dir || !within(e.Path, path) {
		return nil
	}
	for _, child := range e.Children {
		if chain := child.Find(path); chain != nil {
			return append([]*Entry{e}, chain...)
		}
	}
	return nil
}

type walker struct {
	ws         *Workspace
	showHidden bool
	count      int
}

// LogicalTree returns one node per project labelled with the project's
// display name. Hidden files are omitted.
func (w *Workspace) LogicalTree() ([]*Entry, error) {
	if w == nil || len(w.Projects) == 0 {
		return nil, ErrNoProjects
	}
	wk := &walker{ws: w}
	var roots []*Entry
	for _, p := range w.Projects {
		node, err := wk.root(p.DisplayName(), p.Path)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// PhysicalTree returns the project directories as they are on disk, hidden
// files included.
func (w *Workspace) PhysicalTree() ([]*Entry, error) {
	if w == nil || len(w.Projects) == 0 {
		return nil, ErrNoProjects
	}
	wk := &walker{ws: w, showHidden: true}
	var roots []*Entry
	for _, p := range w.Projects {
		node, err := wk.root(filepath.Base(p.Path), p.Path)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// FavoritesTree returns one node per favorite root. Missing favorites are
// skipped.
func (w *Workspace) FavoritesTree() ([]*Entry, error) {
	if w == nil {
		return nil, nil
	}
	wk := &walker{ws: w}
	var roots []*Entry
	for _, fav := range w.Favorites {
		node, err := wk.root(filepath.Base(fav), fav)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

func (wk *walker) root(name, path string) (*Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	node := &Entry{Name: name, Path: path, Dir: info.IsDir()}
	if node.Dir {
		if err := wk.fill(node, path, 1); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (wk *walker) fill(node *Entry, root string, depth int) error {
	if depth > maxDepth {
		return nil
	}
	entries, err := os.ReadDir(node.Path)
	if err != nil {
		return fmt.Errorf("workspace: read %s: %w", node.Path, err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	for _, de := range entries {
		name := de.Name()
		if !wk.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(node.Path, name)
		rel, _ := filepath.Rel(root, full)
		if wk.ws.Excluded(rel) {
			continue
		}
		if wk.count >= maxEntries {
			return nil
		}
		wk.count++
		child := &Entry{Name: name, Path: full, Dir: de.IsDir()}
		if child.Dir {
			if err := wk.fill(child, root, depth+1); err != nil {
				return err
			}
		}
		node.Children = append(node.Children, child)
	}
	return nil
}
