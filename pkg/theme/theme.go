package theme

import (
	"fmt"
	"sync"

	"github.com/opensphere/editorial/internal/logger"
	"github.com/opensphere/editorial/pkg/store"
)

// Theme is a color-scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Valid reports whether t names a known theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Manager holds the active theme and mirrors changes to the store.
// Persistence failures are logged rather than surfaced; a theme switch
// should never fail in the user's hands.
type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	current Theme
	subs    map[int]func(Theme)
	nextID  int
}

// NewManager restores the persisted preference, falling back to fallback
// when nothing is stored or the stored value is unrecognized.
func NewManager(st *store.Store, fallback Theme) *Manager {
	if !fallback.Valid() {
		fallback = Dark
	}
	m := &Manager{
		store:   st,
		current: fallback,
		subs:    make(map[int]func(Theme)),
	}
	if data, err := st.Get(store.ThemeKey); err == nil {
		if t := Theme(data); t.Valid() {
			m.current = t
		} else {
			logger.Warn("ignoring unrecognized stored theme", map[string]interface{}{"value": string(data)})
		}
	}
	return m
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// IsDark reports whether the dark theme is active.
func (m *Manager) IsDark() bool {
	return m.Current() == Dark
}

// Set activates t and persists it.
func (m *Manager) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	m.mu.Lock()
	if m.current == t {
		m.mu.Unlock()
		return nil
	}
	m.current = t
	fns := make([]func(Theme), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(t)
	}
	if err := m.store.Set(store.ThemeKey, []byte(t)); err != nil {
		logger.Error("failed to persist theme", err)
	}
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (m *Manager) Toggle() Theme {
	next := Dark
	if m.Current() == Dark {
		next = Light
	}
	m.Set(next)
	return next
}

// Subscribe registers a callback for theme changes. The returned function
// removes the subscription.
func (m *Manager) Subscribe(fn func(Theme)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
