// Package view implements the console's screen router: a closed set of
// views and the finite-state machine that selects the active one.
package view

// View is one of the mutually exclusive screens the console can display.
// The set is closed so every transition is checked at compile time; there
// is no "unknown view" at runtime.
type View string

const (
	Dashboard         View = "dashboard"
	ClassManagement   View = "class_management"
	TeacherManagement View = "teacher_management"
	StaffManagement   View = "staff_management"
	StudentManagement View = "student_management"
	AuditLog          View = "audit_log"
	Settings          View = "settings"
	ClassDetail       View = "class_detail"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	switch v {
	case Dashboard, ClassManagement, TeacherManagement, StaffManagement,
		StudentManagement, AuditLog, Settings, ClassDetail:
		return true
	}
	return false
}
