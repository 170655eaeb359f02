package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// ErrInvalidCredentials is returned for an unknown identity and for a wrong
// password alike.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)

// dummyPasswordHash is compared against when no identity matches, so an
// unknown login costs the same bcrypt work as a wrong password.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword("no-such-identity")
	if err != nil {
		panic(err)
	}
	return hash
})

type authService struct {
	BaseService
	identityRepo  portsrepo.IdentityRepositoryFacade
	tokens        utils.TokenSettings
	checkPassword func(password, hash string) bool
}

// NewAuthService creates a new auth service.
func NewAuthService(identityRepo portsrepo.IdentityRepositoryFacade, tokens utils.TokenSettings, options ...ServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{identityRepo: identityRepo, tokens: tokens, checkPassword: utils.CheckPasswordHash}
	svc.apply(options)
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := s.findByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.checkPassword(req.Password, dummyPasswordHash())
			s.LogInfo(ctx, "Login failed: unknown identity")
			return nil, ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up identity for login")
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if !s.checkPassword(req.Password, identity.PasswordHash) {
		s.LogInfo(ctx, "Login failed: wrong password", slog.Int64("identity_id", identity.IdentityID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token:    token,
		Username: identity.Username,
		FullName: identity.FullName,
		Role:     identity.Role,
	}, nil
}

func (s *authService) findByUsernameOrEmail(ctx context.Context, login string) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindIdentityByUsername(ctx, login)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.identityRepo.FindIdentityByEmail(ctx, login)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username", "Username and password are required")
	}
	if email == "" {
		return nil, apperrors.NewValidationError("email", "Email is required")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if len(req.Password) > MaxPasswordBytes {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes))
	}

	if taken, err := s.exists(ctx, s.identityRepo.FindIdentityByUsername, username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.NewDuplicateError("username", "Username already exists")
	}
	if taken, err := s.exists(ctx, s.identityRepo.FindIdentityByEmail, email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.NewDuplicateError("email", "Email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &domain.Identity{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         domain.DefaultRole,
		CreatedAt:    s.Now(),
	}
	if err := s.identityRepo.SaveIdentity(ctx, identity); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("username", "Username or email already exists")
		}
		s.LogError(ctx, err, "Failed to save identity", slog.String("username", username))
		return nil, fmt.Errorf("failed to register identity: %w", err)
	}

	s.LogInfo(ctx, "Identity registered", slog.Int64("identity_id", identity.IdentityID))

	token, err := s.issueToken(identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.RegisterResponse{
		Success:  true,
		Message:  "Registration successful",
		Token:    token,
		Username: identity.Username,
		FullName: identity.FullName,
	}, nil
}

func (s *authService) exists(ctx context.Context, find func(context.Context, string) (*domain.Identity, error), value string) (bool, error) {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		s.LogError(ctx, err, "Failed to check identity uniqueness")
		return false, fmt.Errorf("failed to check identity uniqueness: %w", err)
	}
}

func (s *authService) GetIdentityByID(ctx context.Context, identityID int64) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindIdentityByID(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity by ID in service: %w", err)
	}
	return identity, nil
}

func (s *authService) issueToken(identity *domain.Identity) (string, error) {
	return utils.GenerateJWT(s.tokens, identity.IdentityID, identity.Username, identity.Email, identity.Role, identity.FullName, s.Now())
}
