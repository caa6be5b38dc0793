package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/metrics"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/middleware"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/response"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/store"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/validator"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

// ConsoleHandler exposes the console session engine over REST.
type ConsoleHandler struct {
	consoleService *service.ConsoleService
	log            zerolog.Logger
}

// NewConsoleHandler creates a new ConsoleHandler.
func NewConsoleHandler(consoleService *service.ConsoleService, log zerolog.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		consoleService: consoleService,
		log:            log.With().Str("component", "console_handler").Logger(),
	}
}

// Bootstrap godoc
// POST /api/v1/console/bootstrap
// Creates (or replaces) the admin's console session and returns the first
// snapshot. Dark mode is resolved here, once, from stored preference then
// the client's ambient signal.
func (h *ConsoleHandler) Bootstrap(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.BootstrapRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	h.consoleService.Bootstrap(c.Request.Context(), claims.AdminID, claims.Email, req.PrefersDark, req.InitialWidth)
	h.snapshot(c, claims.AdminID, http.StatusCreated)
}

// GetSnapshot godoc
// GET /api/v1/console/snapshot
// Returns the rendering-boundary projection of the session.
func (h *ConsoleHandler) GetSnapshot(c *gin.Context) {
	claims := middleware.GetClaims(c)
	h.snapshot(c, claims.AdminID, http.StatusOK)
}

// Navigate godoc
// POST /api/v1/console/navigate
// Switches the active view. ClassDetail and unknown tags are refused with
// the session state unchanged.
func (h *ConsoleHandler) Navigate(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.NavigateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	target := view.View(req.View)
	if !target.Valid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidView)
		return
	}

	if err := h.consoleService.Navigate(claims.AdminID, target); err != nil {
		h.failConsole(c, err)
		return
	}
	h.snapshot(c, claims.AdminID, http.StatusOK)
}

// Back godoc
// POST /api/v1/console/back
// Unconditional return to the dashboard.
func (h *ConsoleHandler) Back(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.consoleService.Back(claims.AdminID); err != nil {
		h.failConsole(c, err)
		return
	}
	h.snapshot(c, claims.AdminID, http.StatusOK)
}

// OpenClassDetail godoc
// POST /api/v1/console/reports/:report_id/detail
// Guarded ClassDetail transition: the report id must resolve.
func (h *ConsoleHandler) OpenClassDetail(c *gin.Context) {
	claims := middleware.GetClaims(c)

	reportID, err := strconv.Atoi(c.Param("report_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.consoleService.OpenClassDetail(claims.AdminID, reportID); err != nil {
		h.failConsole(c, err)
		return
	}
	h.snapshot(c, claims.AdminID, http.StatusOK)
}

// SetSearchQuery godoc
// POST /api/v1/console/search
// Sets the transient filter text; empty clears it.
func (h *ConsoleHandler) SetSearchQuery(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.SearchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.consoleService.SetSearchQuery(claims.AdminID, req.Query); err != nil {
		h.failConsole(c, err)
		return
	}
	h.snapshot(c, claims.AdminID, http.StatusOK)
}

// ToggleDarkMode godoc
// POST /api/v1/console/settings/dark-mode
// Flips the theme and writes the preference through to durable storage.
func (h *ConsoleHandler) ToggleDarkMode(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dark, err := h.consoleService.ToggleDarkMode(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			response.Fail(c, http.StatusNotFound, response.ErrNoConsoleSession)
			return
		}
		// Preference write failed; the in-memory flag already flipped.
		h.log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("dark-mode write-through failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dark_mode": dark})
}

// ToggleDisclosure godoc
// POST /api/v1/console/disclosure
// Flips one (kind, id) row expansion flag, all other keys untouched.
func (h *ConsoleHandler) ToggleDisclosure(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.DisclosureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	// Classes carry no credential, so there is no row to disclose.
	kind := model.EntityKind(req.Kind)
	if !kind.Valid() || kind == model.KindClass {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return
	}

	visible, err := h.consoleService.ToggleDisclosure(claims.AdminID, kind, req.ID)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"disclosed": visible})
}

// AddClass godoc
// POST /api/v1/console/classes
func (h *ConsoleHandler) AddClass(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if req.StudentCount > req.Capacity {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"student_count": "must not exceed capacity"})
		return
	}

	created, err := h.consoleService.AddClass(c.Request.Context(), claims.AdminID, model.ClassRecord{
		Name:         req.Name,
		Teacher:      model.WeakRef{ID: req.TeacherID, Label: req.TeacherLabel},
		StudentCount: req.StudentCount,
		Capacity:     req.Capacity,
	})
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": created})
}

// AddTeacher godoc
// POST /api/v1/console/teachers
func (h *ConsoleHandler) AddTeacher(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.consoleService.AddTeacher(c.Request.Context(), claims.AdminID, model.TeacherRecord{
		Name:       req.Name,
		Role:       req.Role,
		Status:     model.PersonStatus(req.Status),
		Class:      model.WeakRef{ID: req.ClassID, Label: req.ClassLabel},
		Credential: model.CredentialRef{Username: req.Username},
	}, req.Password)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"teacher": created})
}

// AddStaff godoc
// POST /api/v1/console/staff
func (h *ConsoleHandler) AddStaff(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.consoleService.AddStaff(c.Request.Context(), claims.AdminID, model.StaffRecord{
		Name:       req.Name,
		Role:       req.Role,
		Status:     model.PersonStatus(req.Status),
		Credential: model.CredentialRef{Username: req.Username},
	}, req.Password)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"staff": created})
}

// AddStudent godoc
// POST /api/v1/console/students
func (h *ConsoleHandler) AddStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.consoleService.AddStudent(c.Request.Context(), claims.AdminID, model.StudentRecord{
		Name:            req.Name,
		Age:             req.Age,
		Class:           model.WeakRef{ID: req.ClassID, Label: req.ClassLabel},
		GuardianContact: req.GuardianContact,
		Credential:      model.CredentialRef{Username: req.Username},
	}, req.Password)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": created})
}

// EmitEntityIntent godoc
// POST /api/v1/console/entities/intent
// Records an edit/delete intent in the audit trail. The collections are
// never mutated by these actions.
func (h *ConsoleHandler) EmitEntityIntent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.EntityIntentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	kind := model.EntityKind(req.Kind)
	if !kind.Valid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return
	}

	if err := h.consoleService.EmitEntityIntent(c.Request.Context(), claims.AdminID, model.IntentAction(req.Action), kind, req.ID); err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{})
}

// RevealCredential godoc
// POST /api/v1/console/credentials/reveal
// Returns the raw secret exactly once, with an audit intent emitted.
// Snapshots never carry it.
func (h *ConsoleHandler) RevealCredential(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.RevealRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	kind := model.EntityKind(req.Kind)
	if !kind.Valid() || kind == model.KindClass {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return
	}

	value, err := h.consoleService.RevealCredential(c.Request.Context(), claims.AdminID, kind, req.ID)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"password": value})
}

// ContactGuardian godoc
// POST /api/v1/console/students/:student_id/contact-guardian
// Records the contact intent; the call itself happens outside the console.
func (h *ConsoleHandler) ContactGuardian(c *gin.Context) {
	claims := middleware.GetClaims(c)

	studentID, err := strconv.Atoi(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	contact, err := h.consoleService.ContactGuardian(c.Request.Context(), claims.AdminID, studentID)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guardian_contact": contact})
}

// snapshot projects the session and writes it with the given status.
func (h *ConsoleHandler) snapshot(c *gin.Context, adminID, status int) {
	snap, err := h.consoleService.Snapshot(adminID)
	if err != nil {
		h.failConsole(c, err)
		return
	}
	response.Success(c, status, gin.H{"snapshot": snap})
}

// failConsole maps console-layer errors onto the response taxonomy.
func (h *ConsoleHandler) failConsole(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		response.Fail(c, http.StatusNotFound, response.ErrNoConsoleSession)
	case errors.Is(err, view.ErrInvalidTransition):
		response.Fail(c, http.StatusConflict, response.ErrInvalidTransition)
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, metrics.ErrZeroCapacity):
		response.Fail(c, http.StatusInternalServerError, response.ErrZeroCapacity)
	case errors.Is(err, secrets.ErrUnknownRef):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		h.log.Error().Err(err).Msg("console operation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
