// Package host describes the capability surfaces navsync consumes from the
// application that owns the navigation panels.
//
// Nothing in this package owns a panel or a tree view. The host creates and
// destroys them on its own schedule and announces changes through the
// Registry and Projects streams; navsync only reads identities, swaps header
// content and attaches listeners that it removes again before the panel
// closes.
//
// Listener callbacks receive a context.Context. Contexts produced by the UI
// loop (see internal/uiloop) mark the callback as running on the UI thread;
// any other context means the notification arrived from a background
// goroutine and must be marshalled before touching shared state.
package host
