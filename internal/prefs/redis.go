package prefs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps one hash per user under prefs:<user id>.
type RedisStore struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewRedisStore(rdb *redis.Client, log *logrus.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, log: log}
}

func key(userID int) string {
	return fmt.Sprintf("prefs:%d", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID int) (models.Preferences, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	kv, err := s.rdb.HGetAll(ctx, key(userID)).Result()
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	p := models.Preferences{
		BatteryAlert: s.parse(kv, fieldBatteryAlert),
		AmbientLight: s.parse(kv, fieldAmbientLight),
	}
	if _, ok := kv[fieldDarkMode]; ok {
		v := s.parse(kv, fieldDarkMode)
		p.DarkMode = &v
	}
	return p, nil
}

func (s *RedisStore) parse(kv map[string]string, field string) bool {
	raw, ok := kv[field]
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{"field": field, "value": raw}).Warn("invalid stored preference, using false")
		return false
	}
	return v
}

func (s *RedisStore) set(ctx context.Context, userID int, field string, v bool) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.rdb.HSet(ctx, key(userID), field, strconv.FormatBool(v)).Err(); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", field, err)
	}
	return nil
}

func (s *RedisStore) SetDarkMode(ctx context.Context, userID int, enabled bool) error {
	return s.set(ctx, userID, fieldDarkMode, enabled)
}

func (s *RedisStore) ClearDarkMode(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.rdb.HDel(ctx, key(userID), fieldDarkMode).Err(); err != nil {
		return fmt.Errorf("failed to clear dark mode: %w", err)
	}
	return nil
}

func (s *RedisStore) SetBatteryAlert(ctx context.Context, userID int, enabled bool) error {
	return s.set(ctx, userID, fieldBatteryAlert, enabled)
}

func (s *RedisStore) SetAmbientLight(ctx context.Context, userID int, enabled bool) error {
	return s.set(ctx, userID, fieldAmbientLight, enabled)
}
