// Package session tracks the currently signed-in identity.
package session

import (
	"encoding/json"

	"tudu/pkg/kv"
)

// Key is the store key holding the current session blob.
const Key = "currentUser"

// Session is the currently authenticated identity. At most one exists
// at a time; starting a new one overwrites the old.
type Session struct {
	Email string `json:"email"`
}

// Manager persists the session under a fixed key.
type Manager struct {
	store kv.Store
}

func NewManager(store kv.Store) *Manager {
	return &Manager{store: store}
}

// Restore reads the persisted session, if any. The blob is trusted as-is:
// it is not checked against the credential mapping.
func (m *Manager) Restore() (Session, bool) {
	raw, ok := m.store.Get(Key)
	if !ok {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Email == "" {
		return Session{}, false
	}
	return s, true
}

// Start persists a new session, overwriting any previous one.
func (m *Manager) Start(email string) error {
	bs, err := json.Marshal(Session{Email: email})
	if err != nil {
		return err
	}
	return m.store.Set(Key, string(bs))
}

// End clears the persisted session.
func (m *Manager) End() error {
	return m.store.Remove(Key)
}
