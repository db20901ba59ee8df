package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/navsync/internal/data/dispatcher"
	"github.com/atomicstack/navsync/internal/lifecycle"
	"github.com/atomicstack/navsync/internal/overlay"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/resolver"
	"github.com/atomicstack/navsync/internal/state"
	"github.com/atomicstack/navsync/internal/toolbar"
	"github.com/atomicstack/navsync/internal/uiloop"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/atomicstack/navsync/internal/workspace"
)

type fixture struct {
	dir     string
	loop    *uiloop.Loop
	wb      *workbench.Workbench
	harness *Harness
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.dir, filepath.FromSlash(rel))
}

func (f *fixture) ctx() context.Context {
	return f.loop.Enter(context.Background())
}

func (f *fixture) model() *Model {
	return f.harness.Model()
}

func (f *fixture) projects(t *testing.T) *workbench.Panel {
	t.Helper()
	p := f.wb.Panel(panel.IDProjectsLogical)
	if p == nil || p.Tree() == nil {
		t.Fatalf("projects panel has no tree")
	}
	return p
}

func (f *fixture) surface(t *testing.T, p *workbench.Panel) *overlay.Surface {
	t.Helper()
	s, ok := p.Tree().Header().(*overlay.Surface)
	if !ok {
		t.Fatalf("expected overlay surface on %s, got %T", p.ID(), p.Tree().Header())
	}
	return s
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// newFixture wires a workbench with the overlay lifecycle running and the
// projects panel activated, the same way the application does.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app/main.go":     "package main\n\nfunc main() {}\n",
		"app/pkg/util.go": "package pkg\n",
		"docs/guide.md":   "# Guide\n",
	})
	ws, err := workspace.Parse([]byte("projects:\n  - path: app\nfavorites:\n  - docs\n"), dir)
	if err != nil {
		t.Fatalf("parse workspace: %v", err)
	}

	loop := uiloop.New()
	t.Cleanup(loop.Close)
	ctx := loop.Enter(context.Background())
	wb := workbench.New()
	if err := wb.SetWorkspace(ctx, ws); err != nil {
		t.Fatalf("set workspace: %v", err)
	}
	if _, err := wb.ActivateID(ctx, panel.IDProjectsLogical); err != nil {
		t.Fatalf("activate projects: %v", err)
	}
	res := resolver.New(wb.Capabilities(), wb.Documents(), wb, wb)
	coord := lifecycle.New(lifecycle.Deps{
		Registry:  wb,
		Projects:  wb.Projects(),
		Installer: overlay.NewInstaller(wb, res, loop),
		Loop:      loop,
	})
	coord.Start(ctx)
	t.Cleanup(coord.Stop)
	toolbar.Register(wb, wb.Capabilities())

	model := NewModel(Options{
		Workbench:  wb,
		Loop:       loop,
		Dispatcher: dispatcher.New(wb, state.NewWorkspaceStore(), state.NewEditorStore()),
		Width:      100,
		Height:     20,
	})
	return &fixture{dir: dir, loop: loop, wb: wb, harness: NewHarness(model)}
}
