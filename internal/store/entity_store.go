package store

import "github.com/alifsmart-team/alifsmart-analytics-service/internal/model"

// EntityStore groups the six console collections for one session.
type EntityStore struct {
	Classes  *Collection[model.ClassRecord]
	Teachers *Collection[model.TeacherRecord]
	Staff    *Collection[model.StaffRecord]
	Students *Collection[model.StudentRecord]
	Reports  *Collection[model.ReportRecord]
	Audit    *Collection[model.AuditLogEntry]
}

// NewEntityStore builds an empty store. Use Seed for fixture data.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		Classes: NewCollection(nil,
			func(r model.ClassRecord) int { return r.ID },
			func(r *model.ClassRecord, id int) { r.ID = id }),
		Teachers: NewCollection(nil,
			func(r model.TeacherRecord) int { return r.ID },
			func(r *model.TeacherRecord, id int) { r.ID = id }),
		Staff: NewCollection(nil,
			func(r model.StaffRecord) int { return r.ID },
			func(r *model.StaffRecord, id int) { r.ID = id }),
		Students: NewCollection(nil,
			func(r model.StudentRecord) int { return r.ID },
			func(r *model.StudentRecord, id int) { r.ID = id }),
		Reports: NewCollection(nil,
			func(r model.ReportRecord) int { return r.ID },
			func(r *model.ReportRecord, id int) { r.ID = id }),
		Audit: NewCollection(nil,
			func(r model.AuditLogEntry) int { return r.ID },
			func(r *model.AuditLogEntry, id int) { r.ID = id }),
	}
}

// HasReport reports whether a report id resolves. Used as the guard for
// the class detail transition.
func (s *EntityStore) HasReport(id int) bool {
	_, err := s.Reports.FindByID(id)
	return err == nil
}

// AppendAudit appends an immutable audit row to the session's trail and
// returns it. Entries are never edited or removed.
func (s *EntityStore) AppendAudit(timestamp, actor, action, target string) model.AuditLogEntry {
	return s.Audit.Add(model.AuditLogEntry{
		Timestamp:   timestamp,
		Actor:       actor,
		ActionLabel: action,
		TargetLabel: target,
	})
}
