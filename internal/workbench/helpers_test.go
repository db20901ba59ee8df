package workbench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/workspace"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir string
	ws  *workspace.Workspace
	wb  *Workbench
	ctx context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	for path, body := range map[string]string{
		"app/main.go":               "package main\n",
		"app/internal/core/core.go": "package core\n",
		"docs/guide.md":             "# guide\n",
	} {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
	ws, err := workspace.Parse([]byte("projects:\n  - name: app\n    path: app\nfavorites:\n  - docs\n"), dir)
	require.NoError(t, err)
	return &fixture{dir: dir, ws: ws, wb: New(), ctx: context.Background()}
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.dir, filepath.FromSlash(rel))
}

type recorder struct {
	events []host.RegistryEvent
}

func (r *recorder) listen(_ context.Context, evt host.RegistryEvent) {
	r.events = append(r.events, evt)
}

func (r *recorder) kinds() []host.EventKind {
	var out []host.EventKind
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

type childCounter struct {
	added []host.Component
}

func (c *childCounter) ChildAdded(_ context.Context, child host.Component) {
	c.added = append(c.added, child)
}
