package locale

import (
	"slices"
	"sync"
)

const unselected = -1

// Manager is the registry of named backends and the per category selection
// table. The zero value is an empty registry ready to use.
type Manager struct {
	mu       sync.RWMutex
	names    []string
	backends []Backend
	selected [categorySlots]int
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	m := &Manager{}
	m.resetSelection()
	return m
}

func (m *Manager) resetSelection() {
	for i := range m.selected {
		m.selected[i] = unselected
	}
}

func (m *Manager) indexOf(name string) int {
	return slices.Index(m.names, name)
}

// Register adds a backend under name. A name already present is ignored.
// Registering into an empty registry clears every selection.
func (m *Manager) Register(name string, b Backend) {
	if b == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(name) >= 0 {
		return
	}
	if len(m.backends) == 0 {
		m.resetSelection()
	}
	m.names = append(m.names, name)
	m.backends = append(m.backends, b)
}

// Select routes every category bit in categories to the backend called
// name. Unknown names are ignored.
func (m *Manager) Select(name string, categories Category) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.indexOf(name)
	if id < 0 {
		return
	}
	for i := range categorySlots {
		if categories&(1<<uint(i)) != 0 {
			m.selected[i] = id
		}
	}
}

// RemoveAll drops every backend and selection.
func (m *Manager) RemoveAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.names = nil
	m.backends = nil
	m.resetSelection()
}

// Names lists backends in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.names)
}

// Selected returns the backend chosen for a single category.
func (m *Manager) Selected(category Category) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return selectedName(category, m.names, m.selected)
}

// Clone returns an independent registry holding clones of every backend.
func (m *Manager) Clone() *Manager {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Manager{
		names:    slices.Clone(m.names),
		backends: cloneBackends(m.backends),
		selected: m.selected,
	}
	if len(m.backends) == 0 {
		out.resetSelection()
	}
	return out
}

// Build snapshots the registry into a Composed backend. Later changes to m
// do not affect the result.
func (m *Manager) Build() *Composed {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Composed{
		names:    slices.Clone(m.names),
		backends: cloneBackends(m.backends),
		selected: m.selected,
	}
}

func cloneBackends(in []Backend) []Backend {
	if len(in) == 0 {
		return nil
	}
	out := make([]Backend, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}

func selectedName(category Category, names []string, selected [categorySlots]int) (string, bool) {
	if !category.Single() {
		return "", false
	}
	id := selected[category.slot()]
	if id < 0 || id >= len(names) {
		return "", false
	}
	return names[id], true
}
