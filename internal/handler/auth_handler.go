package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/middleware"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/repository"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/response"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	consoleService *service.ConsoleService
	adminRepo      *repository.AdminRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	consoleService *service.ConsoleService,
	adminRepo *repository.AdminRepository,
) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		consoleService: consoleService,
		adminRepo:      adminRepo,
	}
}

// AdminLogin godoc
// POST /api/v1/auth/admin/login
// Validates email + password, returns JWT with permissions. A successful
// login replaces any previous login session for the same account.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateAdminToken(c.Request.Context(), admin.ID, admin.Email, admin.Permissions)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
		"permissions": admin.Permissions,
	})
}

// GetAdminProfile godoc
// GET /api/v1/auth/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminRepo.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
		"permissions": admin.Permissions,
	})
}

// AdminLogout godoc
// POST /api/v1/auth/admin/logout
// Records the logout intent, drops the console session, and invalidates
// the login token registration.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	h.consoleService.Logout(c.Request.Context(), claims.AdminID)

	if err := h.authService.InvalidateAdminSession(c.Request.Context(), claims.AdminID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
