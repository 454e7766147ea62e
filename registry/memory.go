package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alimasry/go-version-registry/version"
)

// Manager is an in-memory Registry.
type Manager struct {
	mu     sync.RWMutex
	policy LastFilePolicy
	files  map[string]*version.File
	sorted []string // names in key order
	added  []string // names in insertion order
}

var _ Registry = (*Manager)(nil)

func NewManager() *Manager {
	return NewManagerWithPolicy(SortedLast)
}

func NewManagerWithPolicy(policy LastFilePolicy) *Manager {
	return &Manager{
		policy: policy,
		files:  make(map[string]*version.File),
	}
}

// Policy reports how the last file is chosen.
func (m *Manager) Policy() LastFilePolicy { return m.policy }

// AddFile registers an empty file. An existing file is left untouched and
// ErrFileExists is returned.
func (m *Manager) AddFile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.files[name]; exists {
		return fmt.Errorf("file %q: %w", name, ErrFileExists)
	}
	m.files[name] = version.NewFile(name)

	i := sort.SearchStrings(m.sorted, name)
	m.sorted = append(m.sorted, "")
	copy(m.sorted[i+1:], m.sorted[i:])
	m.sorted[i] = name
	m.added = append(m.added, name)
	return nil
}

// AddVersionToLastFile appends to the file selected by the manager's
// LastFilePolicy. With SortedLast this is the greatest name, not the most
// recently added one.
func (m *Manager) AddVersionToLastFile(number int, state version.State, date, label, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.lastFile()
	if f == nil {
		return ErrEmptyRegistry
	}
	f.AddVersion(number, state, date, label, content)
	return nil
}

func (m *Manager) lastFile() *version.File {
	names := m.sorted
	if m.policy == InsertedLast {
		names = m.added
	}
	if len(names) == 0 {
		return nil
	}
	return m.files[names[len(names)-1]]
}

// AddVersionByFileName appends to the named file. The version's label is
// set to name.
func (m *Manager) AddVersionByFileName(name string, number int, state version.State, date, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.files[name]
	if !ok {
		return fmt.Errorf("file %q: %w", name, ErrFileNotFound)
	}
	f.AddVersion(number, state, date, name, content)
	return nil
}

// BuildConfiguration returns every stored version for which match is true.
// match runs on a snapshot taken under the lock, so it may call back into
// the Manager.
func (m *Manager) BuildConfiguration(match func(version.Version) bool) []version.Version {
	result := make([]version.Version, 0)
	for _, v := range m.snapshot() {
		if match(v) {
			result = append(result, v)
		}
	}
	return result
}

// snapshot copies all versions out in key then insertion order.
func (m *Manager) snapshot() []version.Version {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []version.Version
	for _, name := range m.sorted {
		all = append(all, m.files[name].Versions()...)
	}
	return all
}

// BuildConfigurationByDate returns versions dated on or before date.
// Dates are compared as strings.
func (m *Manager) BuildConfigurationByDate(date string) []version.Version {
	return m.BuildConfiguration(func(v version.Version) bool {
		return v.Date() <= date
	})
}

func (m *Manager) BuildConfigurationByVersion(number int) []version.Version {
	return m.BuildConfiguration(func(v version.Version) bool {
		return v.Number() == number
	})
}

func (m *Manager) BuildConfigurationByState(state version.State) []version.Version {
	return m.BuildConfiguration(func(v version.Version) bool {
		return v.State() == state
	})
}

// Files returns the registered names in key order.
func (m *Manager) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.sorted))
	copy(names, m.sorted)
	return names
}

func (m *Manager) Versions(name string) ([]version.Version, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("file %q: %w", name, ErrFileNotFound)
	}
	return f.Versions(), nil
}
