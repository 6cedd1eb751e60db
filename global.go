package locale

import "sync"

var (
	globalMu      sync.Mutex
	globalManager *Manager
)

// defaultManager registers every backend passed to RegisterBackend in rank
// order and routes all categories to the first one.
func defaultManager() *Manager {
	m := NewManager()
	for _, r := range registeredBackends() {
		m.Register(r.name, r.factory())
	}
	if names := m.Names(); len(names) > 0 {
		m.Select(names[0], AllCategories)
	}
	return m
}

func loadGlobalLocked() *Manager {
	if globalManager == nil {
		globalManager = defaultManager()
	}
	return globalManager
}

// Global returns a copy of the process-wide manager. The copy holds cloned
// backends, so callers may change it without affecting anyone else.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	return loadGlobalLocked().Clone()
}

// SetGlobal replaces the process-wide manager with a copy of m and returns
// the manager it replaced.
func SetGlobal(m *Manager) *Manager {
	next := NewManager()
	if m != nil {
		next = m.Clone()
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	prev := loadGlobalLocked()
	globalManager = next
	return prev
}
