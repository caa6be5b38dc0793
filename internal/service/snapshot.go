package service

import (
	"fmt"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/disclosure"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/metrics"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

// Snapshot is the read-only projection the rendering boundary consumes.
// It is built from one atomic session state copy, so every derived value
// in it is consistent with every list.
type Snapshot struct {
	ActiveView  view.View     `json:"active_view"`
	SearchQuery string        `json:"search_query"`
	DarkMode    bool          `json:"dark_mode"`
	Compact     bool          `json:"compact"`
	Dashboard   DashboardView `json:"dashboard"`

	Classes  []ClassView   `json:"classes"`
	Teachers []PersonView  `json:"teachers"`
	Staff    []PersonView  `json:"staff"`
	Students []StudentView `json:"students"`
	Reports  []ReportView  `json:"reports"`
	Audit    []model.AuditLogEntry `json:"audit"`

	SelectedReport *ReportView `json:"selected_report,omitempty"`
}

// DashboardView groups the derived widgets on the landing view.
type DashboardView struct {
	StatCards []StatCard    `json:"stat_cards"`
	Summary   []SummaryItem `json:"summary"`
	Notes     []string      `json:"notes"`
}

// StatCard is one headline counter with a trend badge.
type StatCard struct {
	Title string        `json:"title"`
	Value int           `json:"value"`
	Trend metrics.Trend `json:"trend"`
}

// SummaryItem is one monthly summary bar: a clamped percentage, its
// color bucket, and a short caption.
type SummaryItem struct {
	Title   string         `json:"title"`
	Pct     int            `json:"pct"`
	Bucket  metrics.Bucket `json:"bucket"`
	Caption string         `json:"caption"`
}

// ClassView is a class row enriched with its occupancy bar.
type ClassView struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Teacher      model.WeakRef  `json:"teacher"`
	StudentCount int            `json:"student_count"`
	Capacity     int            `json:"capacity"`
	OccupancyPct int            `json:"occupancy_pct"`
	Occupancy    metrics.Bucket `json:"occupancy"`
}

// PersonView is a teacher or staff row. Password is always the mask;
// the raw value only travels through the reveal operation.
type PersonView struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	Status    model.PersonStatus `json:"status"`
	Class     *model.WeakRef     `json:"class,omitempty"`
	Username  string             `json:"username"`
	Password  string             `json:"password"`
	Disclosed bool               `json:"disclosed"`
}

// StudentView is a student row, masked the same way.
type StudentView struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Age             string        `json:"age"`
	Class           model.WeakRef `json:"class"`
	GuardianContact string        `json:"guardian_contact"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Disclosed       bool          `json:"disclosed"`
}

// ReportView is a monthly report row with clamped, bucketed percentages.
type ReportView struct {
	ID            int               `json:"id"`
	ClassLabel    string            `json:"class_label"`
	TeacherName   string            `json:"teacher_name"`
	AttendancePct int               `json:"attendance_pct"`
	Attendance    metrics.Bucket    `json:"attendance"`
	PaymentPct    int               `json:"payment_pct"`
	Payment       metrics.Bucket    `json:"payment"`
	Performance   model.Performance `json:"performance"`
}

// buildSnapshot projects an atomic state copy into the rendering DTO.
// The only error path is an occupancy derivation over a zero-capacity
// class, which is reported rather than coerced.
func buildSnapshot(st session.State) (*Snapshot, error) {
	snap := &Snapshot{
		ActiveView:  st.ActiveView,
		SearchQuery: st.SearchQuery,
		DarkMode:    st.DarkMode,
		Compact:     st.Compact,
		Dashboard:   buildDashboard(st),
		Audit:       st.Audit,
	}

	snap.Classes = make([]ClassView, 0, len(st.Classes))
	for _, c := range st.Classes {
		pct, err := metrics.OccupancyPct(c.StudentCount, c.Capacity)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", c.Name, err)
		}
		snap.Classes = append(snap.Classes, ClassView{
			ID:           c.ID,
			Name:         c.Name,
			Teacher:      c.Teacher,
			StudentCount: c.StudentCount,
			Capacity:     c.Capacity,
			OccupancyPct: pct,
			Occupancy:    metrics.ColorBucket(pct),
		})
	}

	snap.Teachers = make([]PersonView, 0, len(st.Teachers))
	for _, t := range st.Teachers {
		class := t.Class
		snap.Teachers = append(snap.Teachers, PersonView{
			ID:        t.ID,
			Name:      t.Name,
			Role:      t.Role,
			Status:    t.Status,
			Class:     &class,
			Username:  t.Credential.Username,
			Password:  secrets.Masked,
			Disclosed: st.Disclosed[disclosure.Key{Kind: model.KindTeacher, ID: t.ID}],
		})
	}

	snap.Staff = make([]PersonView, 0, len(st.Staff))
	for _, p := range st.Staff {
		snap.Staff = append(snap.Staff, PersonView{
			ID:        p.ID,
			Name:      p.Name,
			Role:      p.Role,
			Status:    p.Status,
			Username:  p.Credential.Username,
			Password:  secrets.Masked,
			Disclosed: st.Disclosed[disclosure.Key{Kind: model.KindStaff, ID: p.ID}],
		})
	}

	snap.Students = make([]StudentView, 0, len(st.Students))
	for _, s := range st.Students {
		snap.Students = append(snap.Students, StudentView{
			ID:              s.ID,
			Name:            s.Name,
			Age:             s.Age,
			Class:           s.Class,
			GuardianContact: s.GuardianContact,
			Username:        s.Credential.Username,
			Password:        secrets.Masked,
			Disclosed:       st.Disclosed[disclosure.Key{Kind: model.KindStudent, ID: s.ID}],
		})
	}

	snap.Reports = make([]ReportView, 0, len(st.Reports))
	for _, r := range st.Reports {
		snap.Reports = append(snap.Reports, buildReportView(r))
	}

	if st.SelectedReport != nil {
		rv := buildReportView(*st.SelectedReport)
		snap.SelectedReport = &rv
	}

	return snap, nil
}

func buildReportView(r model.ReportRecord) ReportView {
	att := metrics.ClampPercent(r.AttendancePct)
	pay := metrics.ClampPercent(r.PaymentPct)
	return ReportView{
		ID:            r.ID,
		ClassLabel:    r.ClassLabel,
		TeacherName:   r.TeacherName,
		AttendancePct: att,
		Attendance:    metrics.ColorBucket(att),
		PaymentPct:    pay,
		Payment:       metrics.ColorBucket(pay),
		Performance:   r.Performance,
	}
}

// buildDashboard derives the landing widgets. Counters follow the live
// collections so newly added records move the cards; the task counter
// and the monthly summary are period fixtures until the task module
// lands.
func buildDashboard(st session.State) DashboardView {
	cards := []StatCard{
		{Title: "TOTAL MURID", Value: len(st.Students), Trend: metrics.TrendUp},
		{Title: "GURU & STAFF", Value: len(st.Teachers) + len(st.Staff), Trend: metrics.TrendNeutral},
		{Title: "KELAS AKTIF", Value: len(st.Classes), Trend: metrics.TrendUp},
		{Title: "TUGAS AKTIF", Value: 25, Trend: metrics.TrendDown},
	}

	summary := []SummaryItem{
		{Title: "KEHADIRAN", Caption: "+12% vs Sep'25"},
		{Title: "TUGAS", Caption: "-5% vs Sep'25"},
		{Title: "PEMBAYARAN", Caption: "3 unpaid"},
	}
	for i, pct := range []int{85, 65, 92} {
		summary[i].Pct = metrics.ClampPercent(pct)
		summary[i].Bucket = metrics.ColorBucket(summary[i].Pct)
	}

	notes := []string{
		"Kelas C: Kehadiran terendah (75%)",
		"3 Orang Tua (Kelas B) belum lunasi SPP",
		"Kelas A: Peningkatan 5% partisipasi dongeng",
	}

	return DashboardView{StatCards: cards, Summary: summary, Notes: notes}
}
