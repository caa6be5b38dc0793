package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/response"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
)

// CheckLoginSession validates the JWT's JTI against the registered login
// session in Redis. A mismatch means a newer login replaced this token.
func CheckLoginSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if err := authService.ValidateAdminSession(c.Request.Context(), claims.AdminID, claims.ID); err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		}

		c.Next()
	}
}
