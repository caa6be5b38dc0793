package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/config"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/handler"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/middleware"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/response"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Console *handler.ConsoleHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login surface.
	authLimiter := middleware.NewAuthRateLimiter()

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/admin/login", handlers.Auth.AdminLogin)

		// Authenticated profile routes
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetAdminProfile)
		auth.POST("/admin/logout",
			middleware.RequireAdminJWT(authService),
			middleware.CheckLoginSession(authService),
			handlers.Auth.AdminLogout,
		)
	}

	// ─── 2. Console Group (JWT + Login Session) ────────────────────────
	// Snapshots are per-session state and must never be cached.
	consoleAPI := router.Group("/api/v1/console")
	consoleAPI.Use(
		middleware.RequireAdminJWT(authService),
		middleware.CheckLoginSession(authService),
		middleware.NoStore(),
	)
	{
		consoleAPI.POST("/bootstrap", handlers.Console.Bootstrap)
		consoleAPI.GET("/snapshot", handlers.Console.GetSnapshot)

		// Navigation
		consoleAPI.POST("/navigate", handlers.Console.Navigate)
		consoleAPI.POST("/back", handlers.Console.Back)
		consoleAPI.POST("/reports/:report_id/detail", handlers.Console.OpenClassDetail)
		consoleAPI.POST("/search", handlers.Console.SetSearchQuery)

		// Presentation toggles
		consoleAPI.POST("/settings/dark-mode",
			middleware.RequirePermission(string(model.PermissionSettingsWrite)),
			handlers.Console.ToggleDarkMode,
		)
		consoleAPI.POST("/disclosure",
			middleware.RequirePermission(string(model.PermissionEntitiesRead)),
			handlers.Console.ToggleDisclosure,
		)

		// Entity intents
		consoleAPI.POST("/classes",
			middleware.RequirePermission(string(model.PermissionEntitiesWrite)),
			handlers.Console.AddClass,
		)
		consoleAPI.POST("/teachers",
			middleware.RequirePermission(string(model.PermissionEntitiesWrite)),
			handlers.Console.AddTeacher,
		)
		consoleAPI.POST("/staff",
			middleware.RequirePermission(string(model.PermissionEntitiesWrite)),
			handlers.Console.AddStaff,
		)
		consoleAPI.POST("/students",
			middleware.RequirePermission(string(model.PermissionEntitiesWrite)),
			handlers.Console.AddStudent,
		)
		consoleAPI.POST("/entities/intent",
			middleware.RequirePermission(string(model.PermissionEntitiesWrite)),
			handlers.Console.EmitEntityIntent,
		)
		consoleAPI.POST("/students/:student_id/contact-guardian",
			middleware.RequirePermission(string(model.PermissionEntitiesRead)),
			handlers.Console.ContactGuardian,
		)

		// Audited credential reveal
		consoleAPI.POST("/credentials/reveal",
			middleware.RequirePermission(string(model.PermissionCredentialsReveal)),
			handlers.Console.RevealCredential,
		)
	}

	// ─── 3. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/console/viewport", handlers.WS.ViewportStream)
	}

	return router
}
