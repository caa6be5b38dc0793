package view

import "errors"

// ErrInvalidTransition is returned when a guarded transition is refused.
// The router state is unchanged in that case; callers recover locally and
// never surface this as a fatal error.
var ErrInvalidTransition = errors.New("view: invalid transition")

// Router is the finite-state machine selecting the active screen. It has
// exactly one writer (the owning session, under its lock) and runs for the
// lifetime of the session — there is no terminal state. Logout is an
// external event, not a view.
type Router struct {
	active View

	// selectedReport is the report id backing the ClassDetail view.
	// Zero means no selection; ClassDetail is unreachable without one.
	selectedReport int

	// searchQuery is the transient per-view filter text. Every successful
	// transition discards it without warning — abandoning uncommitted
	// view-local input is the intended semantic.
	searchQuery string
}

// NewRouter returns a router showing the dashboard.
func NewRouter() *Router {
	return &Router{active: Dashboard}
}

// Active returns the currently displayed view.
func (r *Router) Active() View {
	return r.active
}

// SelectedReport returns the report id backing ClassDetail, or 0 when no
// selection has been made.
func (r *Router) SelectedReport() int {
	return r.selectedReport
}

// SearchQuery returns the transient filter text for the active view.
func (r *Router) SearchQuery() string {
	return r.searchQuery
}

// SetSearchQuery replaces the transient filter text. It does not survive
// the next transition.
func (r *Router) SetSearchQuery(q string) {
	r.searchQuery = q
}

// Navigate transitions to target unconditionally — except ClassDetail,
// which is reachable only through OpenClassDetail with a resolvable
// selection. A refused transition leaves all router state untouched.
func (r *Router) Navigate(target View) error {
	if !target.Valid() || target == ClassDetail {
		return ErrInvalidTransition
	}
	r.active = target
	r.searchQuery = ""
	return nil
}

// OpenClassDetail resolves reportID through the supplied lookup and, if it
// resolves, records the selection and shows the detail view. An
// unresolvable id refuses the transition: active view, previous selection,
// and filter text all stay as they were.
func (r *Router) OpenClassDetail(reportID int, resolves func(id int) bool) error {
	if resolves == nil || !resolves(reportID) {
		return ErrInvalidTransition
	}
	r.selectedReport = reportID
	r.active = ClassDetail
	r.searchQuery = ""
	return nil
}

// Back returns to the dashboard. Equivalent to Navigate(Dashboard) and
// just as unconditional.
func (r *Router) Back() {
	// Navigate can only fail for ClassDetail, so the error is impossible here.
	_ = r.Navigate(Dashboard)
}

// Reset forces the router to a safe, valid state. Used as the degradation
// path for unexpected conditions: the session must never crash, it falls
// back to the dashboard instead.
func (r *Router) Reset() {
	r.active = Dashboard
	r.searchQuery = ""
}
