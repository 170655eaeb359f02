package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireTier rejects callers whose role maps below min. It must run after
// AuthMiddleware.
func RequireTier(min domain.AccessTier) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if principal.Tier() < min {
			GetLoggerFromCtx(c.Request.Context()).Warn("Access tier too low",
				slog.String("required", min.String()),
				slog.String("actual", principal.Tier().String()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
