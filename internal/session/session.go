// Package session owns the per-admin console state: the view router, the
// disclosure map, the viewport observer, the dark-mode flag, and the
// fixture-backed entity store. One session has exactly one writer — every
// event runs to completion under the session lock, so an observer never
// sees a partially applied update.
package session

import (
	"sync"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/disclosure"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/store"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/viewport"
)

// Session is one admin's console for the lifetime of their login.
type Session struct {
	mu sync.Mutex

	AdminID int
	Email   string

	router     *view.Router
	disclosure *disclosure.Controller
	viewport   *viewport.Observer
	entities   *store.EntityStore
	vault      *secrets.Vault

	darkMode bool
}

// New seeds a session with fixture data and an initial viewport width.
// darkMode must already be resolved through the preference order.
func New(adminID int, email string, darkMode bool, initialWidth int) *Session {
	vault := secrets.NewVault()
	return &Session{
		AdminID:    adminID,
		Email:      email,
		router:     view.NewRouter(),
		disclosure: disclosure.NewController(),
		viewport:   viewport.NewObserver(initialWidth),
		entities:   store.Seed(vault),
		vault:      vault,
		darkMode:   darkMode,
	}
}

// Navigate transitions the router. Preference, disclosure, and entity
// state are cross-cutting and survive every transition.
func (s *Session) Navigate(target view.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Navigate(target)
}

// OpenClassDetail performs the guarded detail transition. An id that does
// not resolve in the report collection refuses the transition and leaves
// the active view unchanged.
func (s *Session) OpenClassDetail(reportID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.OpenClassDetail(reportID, s.entities.HasReport)
}

// Back returns to the dashboard unconditionally.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.Back()
}

// SetSearchQuery updates the transient per-view filter text.
func (s *Session) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.SetSearchQuery(q)
}

// ToggleDisclosure flips one (kind, id) visibility flag and returns its
// new state. All other keys are untouched.
func (s *Session) ToggleDisclosure(kind model.EntityKind, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disclosure.Toggle(kind, id)
}

// ObserveViewport records a width signal and returns the layout mode.
func (s *Session) ObserveViewport(width int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport.Observe(width)
}

// DarkMode returns the current theme flag.
func (s *Session) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// ToggleDarkMode flips the in-memory theme flag and returns the new
// value. Durable write-through is the preference service's job and must
// follow every toggle, not just shutdown.
func (s *Session) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
	return s.darkMode
}

// RevealSecret resolves an entity's credential reference in the vault.
// Callers pair this with an audit intent; the snapshot never contains the
// returned value.
func (s *Session) RevealSecret(kind model.EntityKind, id int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, err := s.credentialRef(kind, id)
	if err != nil {
		return "", err
	}
	return s.vault.Reveal(ref)
}

// EntityLabel resolves the display name for a (kind, id) pair. Used when
// an operation needs a human-readable target for its audit intent.
func (s *Session) EntityLabel(kind model.EntityKind, id int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case model.KindClass:
		rec, err := s.entities.Classes.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Name, nil
	case model.KindTeacher:
		rec, err := s.entities.Teachers.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Name, nil
	case model.KindStaff:
		rec, err := s.entities.Staff.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Name, nil
	case model.KindStudent:
		rec, err := s.entities.Students.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Name, nil
	}
	return "", store.ErrNotFound
}

// FindStudent returns a copy of one student record.
func (s *Session) FindStudent(id int) (model.StudentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.Students.FindByID(id)
}

func (s *Session) credentialRef(kind model.EntityKind, id int) (string, error) {
	switch kind {
	case model.KindTeacher:
		rec, err := s.entities.Teachers.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Credential.SecretRef, nil
	case model.KindStaff:
		rec, err := s.entities.Staff.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Credential.SecretRef, nil
	case model.KindStudent:
		rec, err := s.entities.Students.FindByID(id)
		if err != nil {
			return "", err
		}
		return rec.Credential.SecretRef, nil
	}
	return "", store.ErrNotFound
}
