package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/middleware"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/validator"
)

// newConsoleRouter wires the handler behind a stub auth middleware with a
// bootstrapped session for admin 7.
func newConsoleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	sessions := session.NewManager()
	sessions.Put(session.New(7, "admin@alif.id", false, 1024))
	console := service.NewConsoleService(sessions, nil, nil, zerolog.Nop())
	h := NewConsoleHandler(console, zerolog.Nop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyClaims, &service.Claims{AdminID: 7, Email: "admin@alif.id"})
	})
	r.POST("/disclosure", h.ToggleDisclosure)
	return r
}

// Disclosure rows exist only for credentialed kinds; classes have no
// credential, so the kind is refused the same way reveal refuses it.
func TestToggleDisclosureKindGuard(t *testing.T) {
	r := newConsoleRouter()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "teacher kind toggles", body: `{"kind":"teacher","id":1}`, want: http.StatusOK},
		{name: "staff kind toggles", body: `{"kind":"staff","id":2}`, want: http.StatusOK},
		{name: "class kind refused", body: `{"kind":"class","id":1}`, want: http.StatusBadRequest},
		{name: "unknown kind refused", body: `{"kind":"report","id":1}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/disclosure", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
