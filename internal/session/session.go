// Package session persists which panels were open between runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/workbench"
)

const snapshotKey = "session"

// ErrNoSession is returned by Load when nothing has been saved yet.
var ErrNoSession = errors.New("session: no saved session")

// Snapshot is the persisted window layout.
type Snapshot struct {
	Open    []string `json:"open"`
	Active  string   `json:"active,omitempty"`
	Editors []string `json:"editors,omitempty"`
}

// Store keeps snapshots in a diskv directory.
type Store struct {
	d *diskv.Diskv
}

// Open returns a store rooted at dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("session: directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: ensure %s: %w", dir, err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Save replaces the stored snapshot.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	events.Session.Save(snap.Open, snap.Active)
	return nil
}

// Load returns the stored snapshot or ErrNoSession.
func (s *Store) Load() (Snapshot, error) {
	if !s.d.Has(snapshotKey) {
		return Snapshot{}, ErrNoSession
	}
	data, err := s.d.Read(snapshotKey)
	if err != nil {
		return Snapshot{}, fmt.Errorf("session: read: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("session: decode: %w", err)
	}
	return snap, nil
}

// Clear removes the stored snapshot.
func (s *Store) Clear() error {
	if !s.d.Has(snapshotKey) {
		return nil
	}
	return s.d.Erase(snapshotKey)
}

// Capture records the open navigation panels, the workbench editors and
// the activated panel.
func Capture(wb *workbench.Workbench) Snapshot {
	var snap Snapshot
	for _, p := range wb.Panels(workbench.AreaNavigation) {
		snap.Open = append(snap.Open, p.ID())
	}
	for _, p := range wb.Panels(workbench.AreaEditor) {
		if p.Source() != "" {
			continue
		}
		if file, ok := p.Document(); ok {
			snap.Editors = append(snap.Editors, file.Path)
		}
	}
	if active := wb.Active(); active != nil && active.Area() == workbench.AreaNavigation {
		snap.Active = active.ID()
	}
	return snap
}

// Restore reopens the panels in snap. Unknown identifiers and editors whose
// files are gone are skipped.
func Restore(ctx context.Context, wb *workbench.Workbench, snap Snapshot) {
	events.Session.Restore(snap.Open, snap.Active)
	for _, id := range snap.Open {
		if _, err := wb.Open(ctx, id); err != nil {
			continue
		}
	}
	for _, path := range snap.Editors {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		wb.OpenEditor(ctx, path)
	}
	if snap.Active == "" {
		return
	}
	if p := wb.Panel(snap.Active); p != nil {
		wb.Activate(ctx, p)
	}
}
