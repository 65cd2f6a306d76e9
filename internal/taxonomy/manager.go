package taxonomy

import "sync"

// Manager caches one Snapshot for the lifetime of the process (or until
// Reset). It is a single-writer, multiple-reader resource: concurrent
// Snapshot calls are safe, Reset/Reload serialize against them.
type Manager struct {
	path string

	mu   sync.RWMutex
	snap *Snapshot
}

// NewManager creates a manager over the taxonomy file at path. The file is
// not read until the first Snapshot call.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Snapshot returns the cached snapshot, loading it from disk on first use.
func (m *Manager) Snapshot() (*Snapshot, error) {
	m.mu.RLock()
	snap := m.snap
	m.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return m.Reload()
}

// Reload reads the taxonomy file fresh and replaces the cached snapshot.
// The previous snapshot stays valid for callers already holding it.
func (m *Manager) Reload() (*Snapshot, error) {
	snap, err := LoadSnapshot(m.path)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.snap = snap
	m.mu.Unlock()
	return snap, nil
}

// Reset clears the cache so the next Snapshot call reloads from disk.
// Required because the taxonomy may be edited within the same process
// lifetime (test harnesses, batch regenerate-all flows).
func (m *Manager) Reset() {
	m.mu.Lock()
	m.snap = nil
	m.mu.Unlock()
}

// CategoriesForReadme returns the ordered category metadata used to build
// document sections.
func (m *Manager) CategoriesForReadme() ([]Category, error) {
	snap, err := m.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Categories(), nil
}
