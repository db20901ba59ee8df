package events

import "github.com/atomicstack/navsync/internal/logging"

type LifecycleTracer struct{}

var Lifecycle = LifecycleTracer{}

func (LifecycleTracer) Registry(kind, panelID, variant string) {
	logging.Trace("lifecycle.registry", map[string]interface{}{"kind": kind, "panel": panelID, "variant": variant})
}

func (LifecycleTracer) Unsupported(kind, panelID string) {
	logging.Trace("lifecycle.unsupported", map[string]interface{}{"kind": kind, "panel": panelID})
}

func (LifecycleTracer) Projects(found []string) {
	logging.Trace("lifecycle.projects", map[string]interface{}{"found": found})
}

func (LifecycleTracer) Start(opened int) {
	logging.Trace("lifecycle.start", map[string]interface{}{"opened": opened})
}

func (LifecycleTracer) Stop() {
	logging.Trace("lifecycle.stop", nil)
}
