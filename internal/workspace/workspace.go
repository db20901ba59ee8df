// Package workspace loads the YAML workspace description and builds the file
// trees shown in the navigation panels.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// ErrNoProjects is returned when a workspace lists no projects.
var ErrNoProjects = errors.New("workspace: no projects")

// Project is one open project root.
type Project struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// DisplayName returns Name, or the base name of Path when Name is empty.
func (p Project) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return filepath.Base(p.Path)
}

type document struct {
	Projects  []Project `yaml:"projects"`
	Favorites []string  `yaml:"favorites"`
	Exclude   []string  `yaml:"exclude"`
}

// Workspace is a parsed workspace file. Relative paths are resolved against
// the directory that holds the file.
type Workspace struct {
	Path      string
	Projects  []Project
	Favorites []string
	Exclude   []string

	matchers []glob.Glob
}

// Load reads and parses the workspace file at path.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workspace: read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ws, err := Parse(data, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("workspace: parse %s: %w", path, err)
	}
	ws.Path = abs
	return ws, nil
}

// Parse decodes a workspace document, resolving relative paths against root.
func Parse(data []byte, root string) (*Workspace, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	ws := &Workspace{Exclude: doc.Exclude}
	for _, p := range doc.Projects {
		if strings.TrimSpace(p.Path) == "" {
			continue
		}
		p.Path = resolve(root, p.Path)
		ws.Projects = append(ws.Projects, p)
	}
	for _, fav := range doc.Favorites {
		if strings.TrimSpace(fav) == "" {
			continue
		}
		ws.Favorites = append(ws.Favorites, resolve(root, fav))
	}
	for _, pattern := range doc.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		ws.matchers = append(ws.matchers, g)
	}
	return ws, nil
}

// Excluded reports whether name (a base name or slash-separated relative
// path) matches one of the exclude patterns.
func (w *Workspace) Excluded(name string) bool {
	if w == nil {
		return false
	}
	name = filepath.ToSlash(name)
	base := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		base = name[idx+1:]
	}
	for _, g := range w.matchers {
		if g.Match(name) || g.Match(base) {
			return true
		}
	}
	return false
}

// FavoriteRoot returns the favorite root containing file.
func (w *Workspace) FavoriteRoot(file string) (string, bool) {
	if w == nil || file == "" {
		return "", false
	}
	clean := filepath.Clean(file)
	for _, root := range w.Favorites {
		if within(root, clean) {
			return root, true
		}
	}
	return "", false
}

// ProjectFor returns the project containing file.
func (w *Workspace) ProjectFor(file string) (Project, bool) {
	if w == nil || file == "" {
		return Project{}, false
	}
	clean := filepath.Clean(file)
	for _, p := range w.Projects {
		if within(p.Path, clean) {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectPaths lists the project roots in file order.
func (w *Workspace) ProjectPaths() []string {
	if w == nil {
		return nil
	}
	paths := make([]string, 0, len(w.Projects))
	for _, p := range w.Projects {
		paths = append(paths, p.Path)
	}
	return paths
}

func resolve(root, p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p)
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
