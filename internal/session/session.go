// Package session carries the per-login application state: the authenticated
// student and their lifecycle store. State is explicit and passed into the
// services, never ambient; it exists from login until logout.
package session

import (
	"sync"
	"time"

	"go-outpass/internal/domain"
	"go-outpass/internal/lifecycle"

	"github.com/google/uuid"
)

type State struct {
	ID        string
	Student   domain.Student
	Requests  *lifecycle.Store
	CreatedAt time.Time
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

func (m *Manager) Create(student domain.Student) *State {
	st := &State{
		ID:        uuid.New().String(),
		Student:   student,
		Requests:  lifecycle.NewStore(),
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[st.ID] = st
	m.mu.Unlock()
	return st
}

func (m *Manager) Get(id string) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[id]
	return st, ok
}

// Destroy drops the session and with it the student's request collection.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
