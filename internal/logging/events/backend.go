package events

import "github.com/atomicstack/navsync/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Workspace(path string, projects, favorites int) {
	logging.Trace("backend.workspace", map[string]interface{}{"path": path, "projects": projects, "favorites": favorites})
}

func (BackendTracer) Editors(count int, active string) {
	logging.Trace("backend.editors", map[string]interface{}{"count": count, "active": active})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
