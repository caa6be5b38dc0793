package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/config"
)

// ErrNoPreference signals that durable storage holds no value for the
// key. This is not a failure: it is the documented trigger for the
// ambient-signal fallback during preference resolution.
var ErrNoPreference = errors.New("repository: no stored preference")

// PreferenceRepository is the durable key-value collaborator for UI
// preferences. Exactly one key per admin is part of the contract, and
// its value is always the literal string "true" or "false".
type PreferenceRepository struct {
	rdb *redis.Client
}

func NewPreferenceRepository(rdb *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{rdb: rdb}
}

// GetDarkMode reads the persisted dark-mode literal for an admin.
// A stored value is interpreted literally: "true" is dark, anything else
// stored is light — no further fallback once a value exists.
func (r *PreferenceRepository) GetDarkMode(ctx context.Context, adminID int) (bool, error) {
	val, err := r.rdb.Get(ctx, config.CacheKey.DarkModeKey(adminID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, ErrNoPreference
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

// SetDarkMode writes the literal "true"/"false" through to durable
// storage. Called on every toggle, never batched for shutdown.
func (r *PreferenceRepository) SetDarkMode(ctx context.Context, adminID int, dark bool) error {
	val := "false"
	if dark {
		val = "true"
	}
	return r.rdb.Set(ctx, config.CacheKey.DarkModeKey(adminID), val, 0).Err()
}
