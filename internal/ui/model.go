package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/navsync/internal/backend"
	"github.com/atomicstack/navsync/internal/data/dispatcher"
	"github.com/atomicstack/navsync/internal/theme"
	uistate "github.com/atomicstack/navsync/internal/ui/state"
	"github.com/atomicstack/navsync/internal/uiloop"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeTree Mode = iota
	ModeFilter
	ModeMenu
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Workbench  *workbench.Workbench
	Loop       *uiloop.Loop
	Watcher    *backend.Watcher
	Dispatcher *dispatcher.Dispatcher
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the workbench.
type Model struct {
	wb         *workbench.Workbench
	loop       *uiloop.Loop
	base       context.Context
	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	lists   map[string]*uistate.List
	menu    *uistate.List
	mode    Mode
	editors map[string]*editorBody
	zones   []buttonZone

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backendState   map[backend.Kind]error
	backendLastErr string

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorFocused     bool

	keys     keyMap
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over an already populated workbench.
func NewModel(opts Options) *Model {
	wb := opts.Workbench
	if wb == nil {
		wb = workbench.New()
	}
	loop := opts.Loop
	if loop == nil {
		loop = uiloop.New()
	}
	m := &Model{
		wb:           wb,
		loop:         loop,
		base:         context.Background(),
		backend:      opts.Watcher,
		dispatcher:   opts.Dispatcher,
		lists:        make(map[string]*uistate.List),
		editors:      make(map[string]*editorBody),
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		mode:         ModeTree,
		keys:         defaultKeyMap(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.FilterPrompt != nil {
		c.Style = styles.FilterPrompt.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	m.syncLists()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForLoop(m.loop)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	m.cursorFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.ensureEditorLoaded(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// ctx returns the context handlers run with: marked as running on the loop.
func (m *Model) ctx() context.Context {
	return m.loop.Enter(m.base)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(loopReadyMsg{}):      m.handleLoopReadyMsg,
		reflect.TypeOf(loopClosedMsg{}):     m.handleLoopClosedMsg,
		reflect.TypeOf(editorLoadedMsg{}):   m.handleEditorLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate runs anything queued on the loop during this update and
// refreshes the list state from the workbench.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.loop.Drain(m.base)
	m.syncLists()
	if cmd := m.ensureEditorLoaded(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.cursorFocused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// Workbench exposes the host the model renders.
func (m *Model) Workbench() *workbench.Workbench {
	return m.wb
}

// Mode reports the current input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
