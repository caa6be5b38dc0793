package session

import (
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/disclosure"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

// State is a consistent copy of everything the rendering boundary may
// observe. It is taken under the session lock in one step, so it never
// reflects a half-applied event.
type State struct {
	ActiveView     view.View
	SelectedReport *model.ReportRecord
	SearchQuery    string
	DarkMode       bool
	Compact        bool

	Classes  []model.ClassRecord
	Teachers []model.TeacherRecord
	Staff    []model.StaffRecord
	Students []model.StudentRecord
	Reports  []model.ReportRecord
	Audit    []model.AuditLogEntry

	Disclosed map[disclosure.Key]bool
}

// ExportState snapshots the session atomically.
func (s *Session) ExportState() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ActiveView:  s.router.Active(),
		SearchQuery: s.router.SearchQuery(),
		DarkMode:    s.darkMode,
		Compact:     s.viewport.IsCompact(),
		Classes:     s.entities.Classes.List(),
		Teachers:    s.entities.Teachers.List(),
		Staff:       s.entities.Staff.List(),
		Students:    s.entities.Students.List(),
		Reports:     s.entities.Reports.List(),
		Audit:       s.entities.Audit.List(),
		Disclosed:   make(map[disclosure.Key]bool),
	}

	if id := s.router.SelectedReport(); id != 0 {
		if rec, err := s.entities.Reports.FindByID(id); err == nil {
			st.SelectedReport = &rec
		}
	}

	for _, t := range st.Teachers {
		k := disclosure.Key{Kind: model.KindTeacher, ID: t.ID}
		if s.disclosure.Visible(k.Kind, k.ID) {
			st.Disclosed[k] = true
		}
	}
	for _, p := range st.Staff {
		k := disclosure.Key{Kind: model.KindStaff, ID: p.ID}
		if s.disclosure.Visible(k.Kind, k.ID) {
			st.Disclosed[k] = true
		}
	}
	for _, st2 := range st.Students {
		k := disclosure.Key{Kind: model.KindStudent, ID: st2.ID}
		if s.disclosure.Visible(k.Kind, k.ID) {
			st.Disclosed[k] = true
		}
	}

	return st
}
