package session

import (
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
)

// AddClass appends a class record and returns it with its assigned id.
func (s *Session) AddClass(rec model.ClassRecord) model.ClassRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.Classes.Add(rec)
}

// AddTeacher appends a teacher record, storing the raw secret in the
// vault and only its reference in the record.
func (s *Session) AddTeacher(rec model.TeacherRecord, secret string) model.TeacherRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.entities.Teachers.Add(rec)
	ref := secrets.Ref(model.KindTeacher, created.ID)
	s.vault.Put(ref, secret)
	created.Credential.SecretRef = ref
	s.entities.Teachers.Patch(created.ID, func(r *model.TeacherRecord) {
		r.Credential.SecretRef = ref
	})
	return created
}

// AddStaff appends a staff record, vaulting the secret.
func (s *Session) AddStaff(rec model.StaffRecord, secret string) model.StaffRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.entities.Staff.Add(rec)
	ref := secrets.Ref(model.KindStaff, created.ID)
	s.vault.Put(ref, secret)
	created.Credential.SecretRef = ref
	s.entities.Staff.Patch(created.ID, func(r *model.StaffRecord) {
		r.Credential.SecretRef = ref
	})
	return created
}

// AddStudent appends a student record, vaulting the secret.
func (s *Session) AddStudent(rec model.StudentRecord, secret string) model.StudentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.entities.Students.Add(rec)
	ref := secrets.Ref(model.KindStudent, created.ID)
	s.vault.Put(ref, secret)
	created.Credential.SecretRef = ref
	s.entities.Students.Patch(created.ID, func(r *model.StudentRecord) {
		r.Credential.SecretRef = ref
	})
	return created
}

// AppendAudit records an audit row in the session-local trail.
func (s *Session) AppendAudit(timestamp, actor, action, target string) model.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.AppendAudit(timestamp, actor, action, target)
}
