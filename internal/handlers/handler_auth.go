package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. loginLimit
// throttles login attempts per client IP.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimit, h.login)
		auth.POST("/register", h.register)
	}
}

// registerMeRoutes exposes the caller's own identity.
func registerMeRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.GET("/me", h.me)
}

// login godoc
// @Summary Login
// @Description Authenticates with a username or e-mail and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register
// @Description Creates a new identity with the User role and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.RegisterResponse
// @Failure 409 {object} dto.RegisterResponse "Username or e-mail already exists"
// @Failure 500 {object} dto.RegisterResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RegisterResponse{Message: "Invalid request body"})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		status := statusForError(err)
		msg := apperrors.PublicMessage(err, "Registration failed")
		if status >= http.StatusInternalServerError {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to register identity", slog.String("error", err.Error()))
			msg = "Registration failed"
		}
		c.JSON(status, dto.RegisterResponse{Message: msg})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// me godoc
// @Summary Current identity
// @Description Returns the authenticated caller and its access tier.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *authHandler) me(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	identity, err := h.authService.GetIdentityByID(c.Request.Context(), principal.IdentityID)
	if err != nil {
		handleServiceError(c, err, "Identity not found", "Failed to load identity")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		IdentityID: identity.IdentityID,
		Username:   identity.Username,
		Email:      identity.Email,
		FullName:   identity.FullName,
		Role:       identity.Role,
		AccessTier: domain.AccessTierForRole(identity.Role).String(),
	})
}
