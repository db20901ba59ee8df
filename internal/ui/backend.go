package ui

import (
	"fmt"

	"github.com/atomicstack/navsync/internal/backend"
	"github.com/atomicstack/navsync/internal/uiloop"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// waitForLoop wakes Update when tasks were posted from another goroutine.
func waitForLoop(l *uiloop.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.Ready():
			return loopReadyMsg{}
		case <-l.Done():
			return loopClosedMsg{}
		}
	}
}

type loopReadyMsg struct{}

type loopClosedMsg struct{}

func (m *Model) handleLoopReadyMsg(tea.Msg) tea.Cmd {
	// finishUpdate drains the queue.
	return waitForLoop(m.loop)
}

func (m *Model) handleLoopClosedMsg(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = fmt.Sprintf("%s: %v", evt.Kind, evt.Err)
	}
	if m.dispatcher != nil {
		res := m.dispatcher.Handle(m.ctx(), evt)
		if res.Err != nil && evt.Err == nil {
			m.backendState[evt.Kind] = res.Err
			m.backendLastErr = fmt.Sprintf("%s: %v", evt.Kind, res.Err)
		}
		if res.WorkspaceUpdated && m.verbose {
			m.setInfo("Workspace reloaded")
		}
	}
	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for kind, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = fmt.Sprintf("%s: %v", kind, err)
			}
			return true, msg
		}
	}
	return false, ""
}
