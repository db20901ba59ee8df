package events

import (
	"fmt"

	"github.com/atomicstack/navsync/internal/logging"
)

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Resolve(variant, kind, capability string, found bool) {
	logging.Trace("action.resolve", map[string]interface{}{
		"variant":    variant,
		"kind":       kind,
		"capability": capability,
		"found":      found,
	})
}

func (ActionTracer) Fallback(variant, kind string, rows int) {
	logging.Trace("action.fallback", map[string]interface{}{"variant": variant, "kind": kind, "rows": rows})
}

func (ActionTracer) NoOp(variant, kind, reason string) {
	logging.Trace("action.noop", map[string]interface{}{"variant": variant, "kind": kind, "reason": reason})
}

func (ActionTracer) Invoke(variant, kind, capability string) {
	logging.Trace("action.invoke", map[string]interface{}{"variant": variant, "kind": kind, "capability": capability})
}

func (ActionTracer) Panic(kind string, recovered interface{}) {
	logging.Errorf("action %s panicked: %v", kind, recovered)
	logging.Trace("action.panic", map[string]interface{}{"kind": kind, "panic": fmt.Sprint(recovered)})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
