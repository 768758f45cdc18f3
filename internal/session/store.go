package session

import (
	"encoding/json"
	"fmt"

	"github.com/coli-team/coli-web/internal/domain"
)

// UserKey is the durable storage key holding the signed-in user as JSON.
const UserKey = "user"

// KeyValue is durable client-side storage.
type KeyValue interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type storedUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile,omitempty"`
}

// StoreWriter persists a session into a KeyValue store, for clients without
// cookies such as the CLI.
type StoreWriter struct {
	kv KeyValue
}

// NewStoreWriter creates a StoreWriter over kv.
func NewStoreWriter(kv KeyValue) *StoreWriter {
	return &StoreWriter{kv: kv}
}

// Save implements signup.SessionWriter.
func (w *StoreWriter) Save(s domain.Session) error {
	if err := w.kv.Set(TokenKey, s.Token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	data, err := json.Marshal(storedUser(s.User))
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := w.kv.Set(UserKey, string(data)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// Load reads a session back from the store.
func (w *StoreWriter) Load() (domain.Session, bool, error) {
	token, ok, err := w.kv.Get(TokenKey)
	if err != nil || !ok {
		return domain.Session{}, false, err
	}
	raw, ok, err := w.kv.Get(UserKey)
	if err != nil || !ok {
		return domain.Session{}, false, err
	}
	var u storedUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode user: %w", err)
	}
	return domain.Session{Token: token, User: domain.User(u)}, true, nil
}

// Clear removes the stored token and user.
func (w *StoreWriter) Clear() error {
	for _, key := range []string{TokenKey, UserKey} {
		if err := w.kv.Delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
