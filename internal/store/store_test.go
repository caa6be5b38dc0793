package store

import (
	"errors"
	"testing"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
)

func TestAddAssignsNextUnusedID(t *testing.T) {
	s := Seed(secrets.NewVault())

	created := s.Classes.Add(model.ClassRecord{Name: "C3", Capacity: 20})
	if created.ID != 3 {
		t.Fatalf("new class id = %d, want 3 (after fixtures 1 and 2)", created.ID)
	}

	// The incoming id, if any, is ignored.
	forced := s.Classes.Add(model.ClassRecord{ID: 99, Name: "D4", Capacity: 10})
	if forced.ID != 4 {
		t.Fatalf("id on the request must be ignored, got %d", forced.ID)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := Seed(secrets.NewVault())
	s.Classes.Add(model.ClassRecord{Name: "C3", Capacity: 20})

	names := []string{}
	for _, c := range s.Classes.List() {
		names = append(names, c.Name)
	}
	want := []string{"A1", "B2", "C3"}
	if len(names) != len(want) {
		t.Fatalf("got %d classes, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order %v, want %v", names, want)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := Seed(secrets.NewVault())
	list := s.Classes.List()
	list[0].Name = "mutated"

	again, err := s.Classes.FindByID(list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Name == "mutated" {
		t.Fatal("List must return a copy, not the backing slice")
	}
}

func TestFindByIDNotFound(t *testing.T) {
	s := Seed(secrets.NewVault())
	if _, err := s.Reports.FindByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHasReportGuard(t *testing.T) {
	s := Seed(secrets.NewVault())
	if !s.HasReport(1) || !s.HasReport(3) {
		t.Fatal("fixture reports 1..3 must resolve")
	}
	if s.HasReport(0) || s.HasReport(4) {
		t.Fatal("ids outside the fixtures must not resolve")
	}
}

func TestSeedRegistersCredentials(t *testing.T) {
	vault := secrets.NewVault()
	s := Seed(vault)

	teacher, err := s.Teachers.FindByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if teacher.Credential.Username != "aniw" {
		t.Fatalf("username = %q", teacher.Credential.Username)
	}

	secret, err := vault.Reveal(teacher.Credential.SecretRef)
	if err != nil {
		t.Fatalf("fixture secret not in vault: %v", err)
	}
	if secret != "password123" {
		t.Fatalf("revealed %q", secret)
	}
}

func TestDanglingTeacherRefTolerated(t *testing.T) {
	s := Seed(secrets.NewVault())

	b2, err := s.Classes.FindByID(2)
	if err != nil {
		t.Fatal(err)
	}
	if b2.Teacher.ID != 0 || b2.Teacher.Label != "Pak Budi" {
		t.Fatalf("B2 teacher ref = %+v, want label-only weak ref", b2.Teacher)
	}
	// The label-only ref must not resolve to any teacher record, and that
	// is fine — consumers fall back to the label.
	if _, err := s.Teachers.FindByID(b2.Teacher.ID); err == nil {
		t.Fatal("id 0 should not resolve")
	}
}

func TestAppendAuditIsAppendOnly(t *testing.T) {
	s := Seed(secrets.NewVault())
	before := s.Audit.Len()

	entry := s.AppendAudit("19/10 09:00", "admin@alif.id", "Tambah Kelas", "C3")
	if entry.ID != before+1 {
		t.Fatalf("audit id = %d, want %d", entry.ID, before+1)
	}

	list := s.Audit.List()
	if len(list) != before+1 {
		t.Fatalf("audit length = %d, want %d", len(list), before+1)
	}
	if last := list[len(list)-1]; last.ActionLabel != "Tambah Kelas" {
		t.Fatalf("last entry = %+v", last)
	}
}
