package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/navsync/internal/backend"
	"github.com/atomicstack/navsync/internal/data/dispatcher"
	"github.com/atomicstack/navsync/internal/lifecycle"
	"github.com/atomicstack/navsync/internal/logging"
	"github.com/atomicstack/navsync/internal/overlay"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/resolver"
	"github.com/atomicstack/navsync/internal/session"
	"github.com/atomicstack/navsync/internal/state"
	"github.com/atomicstack/navsync/internal/tmux"
	"github.com/atomicstack/navsync/internal/toolbar"
	"github.com/atomicstack/navsync/internal/ui"
	"github.com/atomicstack/navsync/internal/uiloop"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/atomicstack/navsync/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	WorkspacePath string
	SocketPath    string
	PollEditors   bool
	PollInterval  time.Duration
	SessionDir    string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
}

// Stack is the wired application without the terminal program.
type Stack struct {
	Loop        *uiloop.Loop
	Workbench   *workbench.Workbench
	Installer   *overlay.Installer
	Coordinator *lifecycle.Coordinator
	Dispatcher  *dispatcher.Dispatcher
	Toolbar     *toolbar.SelectInFavorites
	Session     *session.Store

	ctx context.Context
}

// Build wires the workbench and the overlay lifecycle. The workspace is
// loaded and the previous session restored before the coordinator starts,
// so its startup pass sees the restored panels.
func Build(ctx context.Context, cfg Config) (*Stack, error) {
	loop := uiloop.New()
	lctx := loop.Enter(ctx)
	wb := workbench.New()

	if cfg.WorkspacePath != "" {
		ws, err := workspace.Load(cfg.WorkspacePath)
		if err != nil {
			// The watcher reports the failure again and picks up a fixed file.
			logging.Error(err)
		} else if err := wb.SetWorkspace(lctx, ws); err != nil {
			logging.Error(err)
		}
	}

	s := &Stack{Loop: loop, Workbench: wb, ctx: lctx}
	if cfg.SessionDir != "" {
		store, err := session.Open(cfg.SessionDir)
		if err != nil {
			loop.Close()
			return nil, fmt.Errorf("open session store: %w", err)
		}
		s.Session = store
	}
	if !s.restore() {
		if _, err := wb.ActivateID(lctx, panel.IDProjectsLogical); err != nil {
			logging.Error(err)
		}
	}

	res := resolver.New(wb.Capabilities(), wb.Documents(), wb, wb)
	s.Installer = overlay.NewInstaller(wb, res, loop)
	s.Coordinator = lifecycle.New(lifecycle.Deps{
		Registry:  wb,
		Projects:  wb.Projects(),
		Installer: s.Installer,
		Loop:      loop,
	})
	s.Coordinator.Start(lctx)
	s.Toolbar = toolbar.Register(wb, wb.Capabilities())
	s.Dispatcher = dispatcher.New(wb, state.NewWorkspaceStore(), state.NewEditorStore())
	return s, nil
}

// restore reopens the saved session and reports whether one was applied.
func (s *Stack) restore() bool {
	if s.Session == nil {
		return false
	}
	snap, err := s.Session.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			logging.Error(err)
		}
		return false
	}
	session.Restore(s.ctx, s.Workbench, snap)
	return len(s.Workbench.Panels(workbench.AreaNavigation)) > 0
}

// Close persists the session and detaches the coordinator.
func (s *Stack) Close() {
	if s.Session != nil {
		if err := s.Session.Save(session.Capture(s.Workbench)); err != nil {
			logging.Error(err)
		}
	}
	s.Coordinator.Stop()
	s.Loop.Close()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	stack, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer tmux.Shutdown()
	defer stack.Close()

	watcher := backend.NewWatcher(backend.Options{
		WorkspacePath: cfg.WorkspacePath,
		SocketPath:    cfg.SocketPath,
		PollEditors:   cfg.PollEditors,
		Interval:      cfg.PollInterval,
	})
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Workbench:  stack.Workbench,
		Loop:       stack.Loop,
		Watcher:    watcher,
		Dispatcher: stack.Dispatcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
