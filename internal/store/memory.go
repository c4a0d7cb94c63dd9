// Package store provides the in-memory user collection. There is no
// persistence: the collection lives for the lifetime of the process.
package store

import (
	"sync"

	"github.com/msomdec/userdesk/internal/domain"
)

// Memory is an in-memory, ordered user collection implementing
// domain.UserStore. Every mutation builds a fresh snapshot slice, so a
// slice returned by All is never changed by later operations. Safe for
// concurrent use.
type Memory struct {
	mu        sync.RWMutex
	users     []domain.User
	listeners map[int]func(users []domain.User)
	nextKey   int
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{listeners: make(map[int]func(users []domain.User))}
}

// Add appends the user to the end of the collection. The caller is
// trusted to supply a unique ID; no re-check is performed.
func (m *Memory) Add(user domain.User) {
	m.mu.Lock()
	next := make([]domain.User, len(m.users)+1)
	copy(next, m.users)
	next[len(m.users)] = user
	m.users = next
	listeners, snapshot := m.listenersAndSnapshot()
	m.mu.Unlock()

	notify(listeners, snapshot)
}

// Update replaces the first record with a matching ID in place,
// preserving its position. A missing ID is a silent no-op.
func (m *Memory) Update(user domain.User) {
	m.mu.Lock()
	index := -1
	for i, u := range m.users {
		if u.ID == user.ID {
			index = i
			break
		}
	}
	if index < 0 {
		m.mu.Unlock()
		return
	}
	next := make([]domain.User, len(m.users))
	copy(next, m.users)
	next[index] = user
	m.users = next
	listeners, snapshot := m.listenersAndSnapshot()
	m.mu.Unlock()

	notify(listeners, snapshot)
}

// Delete removes every record with the given ID. An absent ID is a no-op.
func (m *Memory) Delete(id string) {
	m.mu.Lock()
	next := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		if u.ID != id {
			next = append(next, u)
		}
	}
	if len(next) == len(m.users) {
		m.mu.Unlock()
		return
	}
	m.users = next
	listeners, snapshot := m.listenersAndSnapshot()
	m.mu.Unlock()

	notify(listeners, snapshot)
}

// Get returns the first record with the given ID.
func (m *Memory) Get(id string) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// All returns the current snapshot in insertion order.
func (m *Memory) All() []domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users
}

// Len returns the number of records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// Subscribe registers a listener invoked with the new snapshot after
// every mutation. The returned function removes the listener.
func (m *Memory) Subscribe(fn func(users []domain.User)) func() {
	m.mu.Lock()
	key := m.nextKey
	m.nextKey++
	m.listeners[key] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, key)
		m.mu.Unlock()
	}
}

// listenersAndSnapshot collects the listeners and current snapshot while
// the lock is held, so notification can happen outside the lock.
func (m *Memory) listenersAndSnapshot() ([]func(users []domain.User), []domain.User) {
	listeners := make([]func(users []domain.User), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	return listeners, m.users
}

func notify(listeners []func(users []domain.User), snapshot []domain.User) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}
