// Package overlay installs the two-button overlay surface into the header of
// navigation tree views and removes it again when the owning panel closes.
//
// Bookkeeping lives in a side table keyed by panel and tree view keys, never on
// the host objects themselves: a tree view carries an installed marker and the
// header it showed before installation, and a panel carries at most one pending
// Watcher. Teardown is the removal of those entries plus restoring the saved
// header.
//
// Every exported operation must run on the UI loop. Listener callbacks that may
// fire from other goroutines hop onto the loop with uiloop.Run before reading
// or writing the side table.
package overlay
