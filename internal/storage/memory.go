package storage

import "tally/internal/model"

// Memory is an in-process snapshot persister. It backs tests and runs that
// do not want a database on disk.
type Memory struct {
	snap  model.Snapshot
	saves int
}

// NewMemory returns a Memory seeded with the given snapshot.
func NewMemory(snap model.Snapshot) *Memory {
	return &Memory{snap: snap}
}

// Load returns the seeded snapshot.
func (m *Memory) Load() (model.Snapshot, error) {
	return m.snap, nil
}

// Save replaces the held snapshot.
func (m *Memory) Save(snap model.Snapshot) error {
	m.snap = snap
	m.saves++
	return nil
}

// Snapshot returns the last saved snapshot.
func (m *Memory) Snapshot() model.Snapshot {
	return m.snap
}

// Saves returns how many times Save has been called.
func (m *Memory) Saves() int {
	return m.saves
}
