// Package prefs persists per-user display and alert settings in a key-value store.
package prefs

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/pawelier/internal/models"
)

const (
	fieldDarkMode     = "dark_mode_enabled"
	fieldBatteryAlert = "battery_alert_enabled"
	fieldAmbientLight = "ambient_light_enabled"
)

type Store interface {
	Get(ctx context.Context, userID int) (models.Preferences, error)
	SetDarkMode(ctx context.Context, userID int, enabled bool) error
	// ClearDarkMode reverts to following the system theme.
	ClearDarkMode(ctx context.Context, userID int) error
	SetBatteryAlert(ctx context.Context, userID int, enabled bool) error
	SetAmbientLight(ctx context.Context, userID int, enabled bool) error
}

// MemoryStore keeps preferences in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[int]map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[int]map[string]bool)}
}

func (s *MemoryStore) Get(_ context.Context, userID int) (models.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kv := s.values[userID]
	p := models.Preferences{
		BatteryAlert: kv[fieldBatteryAlert],
		AmbientLight: kv[fieldAmbientLight],
	}
	if v, ok := kv[fieldDarkMode]; ok {
		p.DarkMode = &v
	}
	return p, nil
}

func (s *MemoryStore) set(userID int, field string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.values[userID]
	if !ok {
		kv = make(map[string]bool)
		s.values[userID] = kv
	}
	kv[field] = v
}

func (s *MemoryStore) SetDarkMode(_ context.Context, userID int, enabled bool) error {
	s.set(userID, fieldDarkMode, enabled)
	return nil
}

func (s *MemoryStore) ClearDarkMode(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values[userID], fieldDarkMode)
	return nil
}

func (s *MemoryStore) SetBatteryAlert(_ context.Context, userID int, enabled bool) error {
	s.set(userID, fieldBatteryAlert, enabled)
	return nil
}

func (s *MemoryStore) SetAmbientLight(_ context.Context, userID int, enabled bool) error {
	s.set(userID, fieldAmbientLight, enabled)
	return nil
}
