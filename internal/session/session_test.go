package session

import (
	"errors"
	"testing"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/disclosure"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/store"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

func newTestSession() *Session {
	return New(7, "admin@alif.id", false, 1024)
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()
	st := s.ExportState()

	if st.ActiveView != view.Dashboard {
		t.Fatalf("initial view = %q", st.ActiveView)
	}
	if st.DarkMode || st.Compact {
		t.Fatalf("defaults: dark=%t compact=%t", st.DarkMode, st.Compact)
	}
	if len(st.Classes) != 2 || len(st.Teachers) != 1 || len(st.Staff) != 2 || len(st.Students) != 2 || len(st.Reports) != 3 {
		t.Fatalf("fixture counts: classes=%d teachers=%d staff=%d students=%d reports=%d",
			len(st.Classes), len(st.Teachers), len(st.Staff), len(st.Students), len(st.Reports))
	}
}

func TestGuardedClassDetail(t *testing.T) {
	s := newTestSession()

	if err := s.OpenClassDetail(42); !errors.Is(err, view.ErrInvalidTransition) {
		t.Fatalf("unresolvable report id: %v", err)
	}
	if st := s.ExportState(); st.ActiveView != view.Dashboard || st.SelectedReport != nil {
		t.Fatalf("refused transition changed state: %+v", st.ActiveView)
	}

	if err := s.OpenClassDetail(2); err != nil {
		t.Fatal(err)
	}
	st := s.ExportState()
	if st.ActiveView != view.ClassDetail {
		t.Fatalf("view = %q", st.ActiveView)
	}
	if st.SelectedReport == nil || st.SelectedReport.ClassLabel != "B" {
		t.Fatalf("selected report = %+v", st.SelectedReport)
	}
}

func TestDarkModeToggleIsSessionState(t *testing.T) {
	s := newTestSession()
	if got := s.ToggleDarkMode(); !got {
		t.Fatal("toggle from light should yield dark")
	}

	// Cross-cutting state survives navigation.
	if err := s.Navigate(view.Settings); err != nil {
		t.Fatal(err)
	}
	if !s.DarkMode() {
		t.Fatal("dark mode lost across a transition")
	}
}

func TestExportStateCarriesDisclosure(t *testing.T) {
	s := newTestSession()
	s.ToggleDisclosure(model.KindStaff, 2)

	st := s.ExportState()
	if !st.Disclosed[disclosure.Key{Kind: model.KindStaff, ID: 2}] {
		t.Fatal("disclosed key missing from state")
	}
	if st.Disclosed[disclosure.Key{Kind: model.KindStaff, ID: 1}] {
		t.Fatal("undisclosed key leaked into state")
	}
}

func TestAddTeacherVaultsSecret(t *testing.T) {
	s := newTestSession()

	created := s.AddTeacher(model.TeacherRecord{
		Name:       "Citra L.",
		Role:       "Guru Kelas",
		Status:     model.StatusActive,
		Class:      model.WeakRef{ID: 2, Label: "B2"},
		Credential: model.CredentialRef{Username: "citra"},
	}, "rahasia99")

	if created.ID != 2 {
		t.Fatalf("teacher id = %d, want 2", created.ID)
	}
	if created.Credential.SecretRef == "" {
		t.Fatal("created record has no secret reference")
	}

	secret, err := s.RevealSecret(model.KindTeacher, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if secret != "rahasia99" {
		t.Fatalf("revealed %q", secret)
	}
}

func TestRevealSecretUnknownEntity(t *testing.T) {
	s := newTestSession()
	if _, err := s.RevealSecret(model.KindStudent, 99); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.RevealSecret(model.KindClass, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("classes have no credentials, got %v", err)
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	if _, err := m.Get(7); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	s := newTestSession()
	m.Put(s)
	got, err := m.Get(7)
	if err != nil || got != s {
		t.Fatalf("Get after Put: %v", err)
	}

	// Re-bootstrap replaces the previous session entirely.
	replacement := newTestSession()
	m.Put(replacement)
	if got, _ := m.Get(7); got != replacement {
		t.Fatal("Put must replace the existing session")
	}

	m.Drop(7)
	if _, err := m.Get(7); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after Drop, got %v", err)
	}
}
