package store

import (
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
)

// Seed builds the fixture-backed store for a new session and registers
// every credential in the vault. The fixture values mirror the pilot
// deployment's sample dataset; the real persistence boundary is an
// external collaborator, so these collections are the session's world.
func Seed(vault *secrets.Vault) *EntityStore {
	s := NewEntityStore()

	// Teacher references from classes are weak: "Pak Budi" has no teacher
	// record, which is a legal state the console must tolerate.
	s.Classes.Add(model.ClassRecord{
		Name:         "A1",
		Teacher:      model.WeakRef{ID: 1, Label: "Bu Ani"},
		StudentCount: 15,
		Capacity:     15,
	})
	s.Classes.Add(model.ClassRecord{
		Name:         "B2",
		Teacher:      model.WeakRef{Label: "Pak Budi"},
		StudentCount: 12,
		Capacity:     15,
	})

	s.Teachers.Add(model.TeacherRecord{
		Name:       "Ani W.",
		Role:       "Guru Kelas",
		Status:     model.StatusActive,
		Class:      model.WeakRef{ID: 1, Label: "A1"},
		Credential: seedCredential(vault, model.KindTeacher, 1, "aniw", "password123"),
	})

	s.Staff.Add(model.StaffRecord{
		Name:       "Dika",
		Role:       "Security",
		Status:     model.StatusActive,
		Credential: seedCredential(vault, model.KindStaff, 1, "dika", "secure123"),
	})
	s.Staff.Add(model.StaffRecord{
		Name:       "Budi S.",
		Role:       "IT",
		Status:     model.StatusOnLeave,
		Credential: seedCredential(vault, model.KindStaff, 2, "budi", "itadmin"),
	})

	s.Students.Add(model.StudentRecord{
		Name:            "Alika P.",
		Age:             "5.2",
		Class:           model.WeakRef{ID: 1, Label: "A1"},
		GuardianContact: "0812XXXXXX",
		Credential:      seedCredential(vault, model.KindStudent, 1, "alika", "alika123"),
	})
	s.Students.Add(model.StudentRecord{
		Name:            "Bima S.",
		Age:             "5.5",
		Class:           model.WeakRef{ID: 2, Label: "B2"},
		GuardianContact: "0813XXXXXX",
		Credential:      seedCredential(vault, model.KindStudent, 2, "bima", "bima456"),
	})

	s.Reports.Add(model.ReportRecord{
		ClassLabel:    "A",
		TeacherName:   "Bu Dian",
		AttendancePct: 92,
		PaymentPct:    100,
		Performance:   model.Performance{GameScore: 8.2, StoryScore: 10},
	})
	s.Reports.Add(model.ReportRecord{
		ClassLabel:    "B",
		TeacherName:   "Pak Rudi",
		AttendancePct: 88,
		PaymentPct:    85,
		Performance:   model.Performance{GameScore: 7.5, StoryScore: 8},
	})
	s.Reports.Add(model.ReportRecord{
		ClassLabel:    "C",
		TeacherName:   "Bu Siti",
		AttendancePct: 75,
		PaymentPct:    100,
		Performance:   model.Performance{GameScore: 6.8, StoryScore: 7},
	})

	s.Audit.Add(model.AuditLogEntry{
		Timestamp:   "18/10 14:30",
		Actor:       "ani@alif.id",
		ActionLabel: "Tambah Murid",
		TargetLabel: "Alika Putri",
	})
	s.Audit.Add(model.AuditLogEntry{
		Timestamp:   "18/10 15:12",
		Actor:       "budi@alif.id",
		ActionLabel: "Hapus Kelas",
		TargetLabel: "Kelas B",
	})

	return s
}

func seedCredential(vault *secrets.Vault, kind model.EntityKind, id int, username, secret string) model.CredentialRef {
	ref := secrets.Ref(kind, id)
	vault.Put(ref, secret)
	return model.CredentialRef{Username: username, SecretRef: ref}
}
