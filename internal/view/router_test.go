package view

import (
	"errors"
	"testing"
)

func TestRouterStartsOnDashboard(t *testing.T) {
	r := NewRouter()
	if r.Active() != Dashboard {
		t.Fatalf("initial view = %q, want %q", r.Active(), Dashboard)
	}
}

func TestNavigateBetweenManagementViews(t *testing.T) {
	r := NewRouter()
	for _, target := range []View{ClassManagement, TeacherManagement, StaffManagement, StudentManagement, AuditLog, Settings, Dashboard} {
		if err := r.Navigate(target); err != nil {
			t.Fatalf("Navigate(%q) error: %v", target, err)
		}
		if r.Active() != target {
			t.Fatalf("active = %q, want %q", r.Active(), target)
		}
	}
}

func TestNavigateRefusesClassDetail(t *testing.T) {
	r := NewRouter()
	if err := r.Navigate(ClassDetail); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Navigate(ClassDetail) = %v, want ErrInvalidTransition", err)
	}
	if r.Active() != Dashboard {
		t.Fatalf("refused transition moved the view to %q", r.Active())
	}
}

func TestNavigateRefusesUnknownView(t *testing.T) {
	r := NewRouter()
	if err := r.Navigate(View("payroll")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Navigate(unknown) = %v, want ErrInvalidTransition", err)
	}
	if r.Active() != Dashboard {
		t.Fatalf("refused transition moved the view to %q", r.Active())
	}
}

func TestTransitionClearsSearchQuery(t *testing.T) {
	r := NewRouter()
	if err := r.Navigate(StudentManagement); err != nil {
		t.Fatal(err)
	}
	r.SetSearchQuery("alika")

	if err := r.Navigate(ClassManagement); err != nil {
		t.Fatal(err)
	}
	if r.SearchQuery() != "" {
		t.Fatalf("search query survived the transition: %q", r.SearchQuery())
	}
}

func TestRefusedTransitionKeepsSearchQuery(t *testing.T) {
	r := NewRouter()
	r.SetSearchQuery("ani")
	_ = r.Navigate(ClassDetail)
	if r.SearchQuery() != "ani" {
		t.Fatalf("refused transition cleared the filter: %q", r.SearchQuery())
	}
}

func TestOpenClassDetail(t *testing.T) {
	r := NewRouter()
	resolves := func(id int) bool { return id == 2 }

	if err := r.OpenClassDetail(99, resolves); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unresolvable id: got %v, want ErrInvalidTransition", err)
	}
	if r.Active() != Dashboard || r.SelectedReport() != 0 {
		t.Fatalf("refused detail transition changed state: view=%q selected=%d", r.Active(), r.SelectedReport())
	}

	if err := r.OpenClassDetail(2, resolves); err != nil {
		t.Fatalf("resolvable id: %v", err)
	}
	if r.Active() != ClassDetail || r.SelectedReport() != 2 {
		t.Fatalf("detail transition: view=%q selected=%d", r.Active(), r.SelectedReport())
	}
}

func TestBackReturnsToDashboard(t *testing.T) {
	r := NewRouter()
	if err := r.OpenClassDetail(1, func(int) bool { return true }); err != nil {
		t.Fatal(err)
	}
	r.Back()
	if r.Active() != Dashboard {
		t.Fatalf("Back landed on %q", r.Active())
	}
}

func TestResetDegradesToDashboard(t *testing.T) {
	r := NewRouter()
	_ = r.Navigate(Settings)
	r.SetSearchQuery("x")
	r.Reset()
	if r.Active() != Dashboard || r.SearchQuery() != "" {
		t.Fatalf("Reset left view=%q query=%q", r.Active(), r.SearchQuery())
	}
}
