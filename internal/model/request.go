package model

// AdminLoginRequest is the login payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// BootstrapRequest carries the two signals only the client can observe:
// the OS-level "prefers dark" hint and the initial viewport width.
type BootstrapRequest struct {
	PrefersDark  bool `json:"prefers_dark"`
	InitialWidth int  `json:"initial_width" binding:"required,min=1"`
}

// NavigateRequest targets a view by its wire tag.
type NavigateRequest struct {
	View string `json:"view" binding:"required"`
}

// SearchRequest sets the active view's transient filter text. An empty
// string clears it, so the field is not required.
type SearchRequest struct {
	Query string `json:"query"`
}

// DisclosureRequest addresses one (kind, id) row.
type DisclosureRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   int    `json:"id" binding:"required,min=1"`
}

// AddClassRequest creates a class record. Capacity must be positive so
// occupancy stays defined; student_count may not exceed it.
type AddClassRequest struct {
	Name         string `json:"name" binding:"required"`
	TeacherID    int    `json:"teacher_id"`
	TeacherLabel string `json:"teacher_label" binding:"required"`
	StudentCount int    `json:"student_count" binding:"min=0"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
}

// AddTeacherRequest creates a teacher record with a fresh credential.
type AddTeacherRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Status     string `json:"status" binding:"required"`
	ClassID    int    `json:"class_id"`
	ClassLabel string `json:"class_label"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
}

// AddStaffRequest creates a staff record with a fresh credential.
type AddStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// AddStudentRequest creates a student record with a fresh credential.
type AddStudentRequest struct {
	Name            string `json:"name" binding:"required"`
	Age             string `json:"age" binding:"required"`
	ClassID         int    `json:"class_id"`
	ClassLabel      string `json:"class_label" binding:"required"`
	GuardianContact string `json:"guardian_contact" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

// IntentAction is an audited entity action that never mutates state.
type IntentAction string

const (
	IntentEdit   IntentAction = "edit"
	IntentDelete IntentAction = "delete"
)

// EntityIntentRequest records an edit/delete intent against one record.
type EntityIntentRequest struct {
	Action string `json:"action" binding:"required,oneof=edit delete"`
	Kind   string `json:"kind" binding:"required"`
	ID     int    `json:"id" binding:"required,min=1"`
}

// RevealRequest asks for one credential's raw value.
type RevealRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   int    `json:"id" binding:"required,min=1"`
}
