package model

// EntityKind identifies which console collection a record belongs to.
// Used as the first half of disclosure keys and in audit intents.
type EntityKind string

const (
	KindClass   EntityKind = "class"
	KindTeacher EntityKind = "teacher"
	KindStaff   EntityKind = "staff"
	KindStudent EntityKind = "student"
)

// Valid reports whether k is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindClass, KindTeacher, KindStaff, KindStudent:
		return true
	}
	return false
}

// PersonStatus is the employment/enrollment status shown as a badge.
// Display values follow the console's Indonesian labels.
type PersonStatus string

const (
	StatusActive   PersonStatus = "Aktif"
	StatusOnLeave  PersonStatus = "Cuti"
	StatusInactive PersonStatus = "Tidak Aktif"
)

// WeakRef is a non-enforced reference to a record in another collection:
// an id plus a cached display label. The id may be zero (label-only) or
// dangling — collections make no referential integrity guarantee, so
// consumers must treat lookups as best-effort and fall back to the label.
type WeakRef struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// CredentialRef carries a login identity without the secret. SecretRef is
// an opaque handle into the credential vault; the raw secret never appears
// in a record or a snapshot. Revealing it is a separate audited operation.
type CredentialRef struct {
	Username  string `json:"username"`
	SecretRef string `json:"-"`
}

// ClassRecord is a class group. Invariant: 0 ≤ StudentCount ≤ Capacity.
type ClassRecord struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Teacher      WeakRef `json:"teacher"`
	StudentCount int     `json:"student_count"`
	Capacity     int     `json:"capacity"`
}

// TeacherRecord is a teaching staff member with an assigned class.
type TeacherRecord struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Role       string        `json:"role"`
	Status     PersonStatus  `json:"status"`
	Class      WeakRef       `json:"class"`
	Credential CredentialRef `json:"credential"`
}

// StaffRecord is a non-teaching staff member.
type StaffRecord struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Role       string        `json:"role"`
	Status     PersonStatus  `json:"status"`
	Credential CredentialRef `json:"credential"`
}

// StudentRecord is an enrolled student. Age is a display string ("5.2")
// as entered by admissions, not a computed value.
type StudentRecord struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Age             string        `json:"age"`
	Class           WeakRef       `json:"class"`
	GuardianContact string        `json:"guardian_contact"`
	Credential      CredentialRef `json:"credential"`
}

// Performance holds the two 0–10 activity scores tracked per class.
type Performance struct {
	GameScore  float64 `json:"game_score"`
	StoryScore float64 `json:"story_score"`
}

// ReportRecord is a monthly per-class report row. Attendance and payment
// are percentages already in [0,100]; rendering still clamps defensively
// through the metrics package.
type ReportRecord struct {
	ID            int         `json:"id"`
	ClassLabel    string      `json:"class_label"`
	TeacherName   string      `json:"teacher_name"`
	AttendancePct int         `json:"attendance_pct"`
	PaymentPct    int         `json:"payment_pct"`
	Performance   Performance `json:"performance"`
}

// AuditLogEntry is one append-only audit trail row. Entries are immutable
// once created; the console never edits or removes them.
type AuditLogEntry struct {
	ID          int    `json:"id"`
	Timestamp   string `json:"timestamp"`
	Actor       string `json:"actor"`
	ActionLabel string `json:"action_label"`
	TargetLabel string `json:"target_label"`
}
