package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/repository"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
)

// DarkModeStore is the durable half of the preference order. A missing
// value is repository.ErrNoPreference, not a failure. Satisfied by
// repository.PreferenceRepository.
type DarkModeStore interface {
	GetDarkMode(ctx context.Context, adminID int) (bool, error)
	SetDarkMode(ctx context.Context, adminID int, dark bool) error
}

// PreferenceService resolves and persists the dark-mode preference.
type PreferenceService struct {
	store DarkModeStore
	log   zerolog.Logger
}

func NewPreferenceService(store DarkModeStore, log zerolog.Logger) *PreferenceService {
	return &PreferenceService{
		store: store,
		log:   log.With().Str("component", "preference_service").Logger(),
	}
}

// ResolveDarkMode evaluates the preference once, at session bootstrap.
// First match wins:
//  1. a persisted "true"/"false" in durable storage, taken literally;
//  2. otherwise the client-reported ambient "prefers dark" signal;
//  3. otherwise light mode (ambientDark defaults to false, which folds
//     steps 2 and 3 together).
//
// A missing stored value is not an error, and a storage failure degrades
// to the same fallback rather than blocking the bootstrap.
func (s *PreferenceService) ResolveDarkMode(ctx context.Context, adminID int, ambientDark bool) bool {
	stored, err := s.store.GetDarkMode(ctx, adminID)
	if err == nil {
		return stored
	}
	if !errors.Is(err, repository.ErrNoPreference) {
		s.log.Warn().Err(err).Int("admin_id", adminID).Msg("preference read failed, using ambient signal")
	}
	return ambientDark
}

// Toggle flips the session's theme flag and writes the new literal
// through to durable storage. The write-through happens on every toggle.
func (s *PreferenceService) Toggle(ctx context.Context, sess *session.Session) (bool, error) {
	dark := sess.ToggleDarkMode()
	if err := s.store.SetDarkMode(ctx, sess.AdminID, dark); err != nil {
		return dark, err
	}
	return dark, nil
}
