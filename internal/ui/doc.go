// Package ui contains the Bubble Tea program that renders the workbench.
// Model.Update is the single UI thread: every overlay operation, registry
// notification and backend update runs inside it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse motion, backend updates, loop wake-ups).
//   - Every handler runs with a context entered on the uiloop.Loop, so overlay
//     actions triggered synchronously execute inline. Tasks posted from other
//     goroutines are drained at the end of each Update and whenever the loop
//     signals readiness through waitForLoop.
//
// State ownership:
//   - Panels, trees and editors live in the workbench. The model only keeps
//     per-panel list state (internal/ui/state.List) for filtering, cursor and
//     viewport, resynchronised from the tree after every update.
//   - Workspace and tmux editor snapshots are kept in internal/state stores by
//     the dispatcher, which also pushes them into the workbench.
//
// Backend interactions:
//   - A backend.Watcher streams workspace reloads and tmux editor polls;
//     Update waits for those events and hands them to the dispatcher.
//   - Editor contents are loaded asynchronously via loadEditorCmd.
package ui
