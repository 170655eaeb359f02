package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSettings = utils.TokenSettings{
	Secret:   "middleware-secret",
	Issuer:   "backoffice-test",
	Audience: "backoffice-test-users",
	Expiry:   time.Hour,
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := GetPrincipalFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": p.IdentityID, "role": p.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func tokenFor(t *testing.T, role string) string {
	token, err := utils.GenerateJWT(testSettings, 7, "user7", "user7@example.com", role, "User Seven", time.Now())
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSettings))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + tokenFor(t, domain.RoleAgent), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequireTier(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSettings), RequireTier(domain.TierManager))

	tests := []struct {
		role   string
		status int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleManager, http.StatusOK},
		{domain.RoleTeamLead, http.StatusOK},
		{domain.RoleAgent, http.StatusForbidden},
		{domain.RoleUser, http.StatusForbidden},
		{"Intern", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.role))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestNewMemoryRateLimit(t *testing.T) {
	_, err := NewMemoryRateLimit("five per minute")
	assert.Error(t, err)

	limit, err := NewMemoryRateLimit("2-M")
	require.NoError(t, err)
	r := newTestRouter(limit)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
