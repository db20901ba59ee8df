package events

import "github.com/atomicstack/navsync/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ToolbarTracer struct{}

type SessionTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Toolbar = ToolbarTracer{}
	Session = SessionTracer{}
)

func (UITracer) Key(key, panelID string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "panel": panelID})
}

func (UITracer) Cursor(panelID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"panel": panelID, "cursor": cursor})
}

func (UITracer) OpenEditor(path string) {
	logging.Trace("ui.editor.open", map[string]interface{}{"path": path})
}

func (FilterTracer) Set(panelID, filter string) {
	logging.Trace("filter.set", map[string]interface{}{"panel": panelID, "filter": filter})
}

func (FilterTracer) Cleared(panelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"panel": panelID})
}

func (ToolbarTracer) Register(path, id string, position int) {
	logging.Trace("toolbar.register", map[string]interface{}{"path": path, "id": id, "position": position})
}

func (ToolbarTracer) Invoke(id string, delegated bool) {
	logging.Trace("toolbar.invoke", map[string]interface{}{"id": id, "delegated": delegated})
}

func (SessionTracer) Save(open []string, active string) {
	logging.Trace("session.save", map[string]interface{}{"open": open, "active": active})
}

func (SessionTracer) Restore(open []string, active string) {
	logging.Trace("session.restore", map[string]interface{}{"open": open, "active": active})
}

func (UITracer) Click(panelID, button string) {
	logging.Trace("ui.click", map[string]interface{}{"panel": panelID, "button": button})
}
