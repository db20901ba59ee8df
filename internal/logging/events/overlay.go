package events

import "github.com/atomicstack/navsync/internal/logging"

type OverlayTracer struct{}

var Overlay = OverlayTracer{}

func (OverlayTracer) Install(panelID, tree, token string, hadHeader bool) {
	logging.Trace("overlay.install", map[string]interface{}{
		"panel":     panelID,
		"tree":      tree,
		"token":     token,
		"hadHeader": hadHeader,
	})
}

func (OverlayTracer) InstallSkipped(panelID, tree string) {
	logging.Trace("overlay.install.skip", map[string]interface{}{"panel": panelID, "tree": tree})
}

func (OverlayTracer) Teardown(panelID, tree string, restored bool) {
	logging.Trace("overlay.teardown", map[string]interface{}{"panel": panelID, "tree": tree, "restored": restored})
}

func (OverlayTracer) WatchAttach(panelID string) {
	logging.Trace("overlay.watch.attach", map[string]interface{}{"panel": panelID})
}

func (OverlayTracer) WatchSkipped(panelID, reason string) {
	logging.Trace("overlay.watch.skip", map[string]interface{}{"panel": panelID, "reason": reason})
}

func (OverlayTracer) WatchDetach(panelID, reason string) {
	logging.Trace("overlay.watch.detach", map[string]interface{}{"panel": panelID, "reason": reason})
}

func (OverlayTracer) Click(panelID, button string) {
	logging.Trace("overlay.click", map[string]interface{}{"panel": panelID, "button": button})
}
