// Package workbench is the in-process host the overlay manager runs inside.
//
// It owns a panel registry with two areas (navigation and editors), the
// containers and tree views inside those panels, a capability registry with
// the built-in navigation actions, a favorites node resolver, the set of open
// projects and the editor toolbar registry. Every method is expected to run
// on the UI loop.
package workbench
