package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var authTokenSettings = utils.TokenSettings{
	Secret:   "auth-test-secret",
	Issuer:   "backoffice-test",
	Audience: "backoffice-test-users",
	Expiry:   time.Hour,
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockIdentityRepository
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockIdentityRepository)
	// Tokens are validated against the wall clock, so only pin the clock where
	// expiry does not matter.
	suite.service = services.NewAuthService(suite.mockRepo, authTokenSettings)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestRegister_ValidationMessages() {
	ctx := context.Background()
	tests := []struct {
		name string
		req  dto.RegisterRequest
		msg  string
	}{
		{"missing username", dto.RegisterRequest{Password: "secret1", Email: "a@example.com"}, "Username and password are required"},
		{"missing password", dto.RegisterRequest{Username: "alice", Email: "a@example.com"}, "Username and password are required"},
		{"blank username", dto.RegisterRequest{Username: "   ", Password: "secret1", Email: "a@example.com"}, "Username and password are required"},
		{"missing email", dto.RegisterRequest{Username: "alice", Password: "secret1"}, "Email is required"},
		{"short password", dto.RegisterRequest{Username: "alice", Password: "12345", Email: "a@example.com"}, "Password must be at least 6 characters"},
		{"password over bcrypt limit", dto.RegisterRequest{Username: "alice", Password: strings.Repeat("p", 80), Email: "a@example.com"}, "Password must be at most 72 bytes"},
		{"all missing reports first rule", dto.RegisterRequest{}, "Username and password are required"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			res, err := suite.service.Register(ctx, tt.req)
			suite.Nil(res)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Equal(tt.msg, err.Error())
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveIdentity", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_UsernameTaken() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(&domain.Identity{IdentityID: 1}, nil).Once()

	res, err := suite.service.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret1", Email: "a@example.com"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Username already exists", err.Error())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_EmailTaken() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "a@example.com").Return(&domain.Identity{IdentityID: 2}, nil).Once()

	res, err := suite.service.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret1", Email: "a@example.com"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Email already exists", err.Error())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_RaceOnInsert() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "a@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveIdentity", ctx, mock.AnythingOfType("*domain.Identity")).Return(apperrors.ErrDuplicate).Once()

	res, err := suite.service.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret1", Email: "a@example.com"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Username or email already exists", err.Error())
}

func (suite *AuthServiceTestSuite) TestRegister_LookupFailure() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(nil, assert.AnError).Once()

	res, err := suite.service.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret1", Email: "a@example.com"})

	suite.Nil(res)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestRegisterThenLogin_RoundTrip() {
	ctx := context.Background()
	var saved *domain.Identity

	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveIdentity", ctx, mock.MatchedBy(func(i *domain.Identity) bool {
		return i.Username == "alice" && i.Email == "alice@example.com" && i.Role == domain.RoleUser && i.PasswordHash != "secret1"
	})).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Identity)
		saved.IdentityID = 77
	}).Return(nil).Once()

	reg, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "alice", Password: "secret1", Email: "alice@example.com", FullName: "Alice Doe",
	})
	suite.Require().NoError(err)
	suite.True(reg.Success)
	suite.NotEmpty(reg.Token)
	suite.Equal("alice", reg.Username)
	suite.Equal("Alice Doe", reg.FullName)

	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(saved, nil).Once()

	login, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret1"})
	suite.Require().NoError(err)
	suite.Equal(domain.RoleUser, login.Role)
	suite.Equal("Alice Doe", login.FullName)

	claims, err := utils.ParseAndValidateJWT(login.Token, authTokenSettings)
	suite.Require().NoError(err)
	id, err := claims.IdentityID()
	suite.Require().NoError(err)
	suite.Equal(int64(77), id)
	suite.Equal(domain.RoleUser, claims.Role)
	suite.Equal("alice@example.com", claims.Email)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_FallsBackToEmail() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	suite.Require().NoError(err)
	identity := &domain.Identity{IdentityID: 3, Username: "bob", Email: "bob@example.com", PasswordHash: hash, Role: domain.RoleManager}

	suite.mockRepo.On("FindIdentityByUsername", ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "bob@example.com").Return(identity, nil).Once()

	res, err := suite.service.Login(ctx, dto.LoginRequest{Username: "bob@example.com", Password: "secret1"})

	suite.Require().NoError(err)
	suite.Equal("bob", res.Username)
	suite.Equal(domain.RoleManager, res.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_FailuresAreIndistinguishable() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindIdentityByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	_, unknownErr := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "secret1"})

	suite.mockRepo.On("FindIdentityByUsername", ctx, "bob").Return(&domain.Identity{IdentityID: 3, Username: "bob", PasswordHash: hash}, nil).Once()
	_, wrongPwErr := suite.service.Login(ctx, dto.LoginRequest{Username: "bob", Password: "nope-nope"})

	suite.ErrorIs(unknownErr, apperrors.ErrUnauthorized)
	suite.ErrorIs(wrongPwErr, apperrors.ErrUnauthorized)
	suite.Equal(unknownErr.Error(), wrongPwErr.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_RepositoryFailure() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "bob").Return(nil, assert.AnError).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "bob", Password: "secret1"})

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRegister_PasswordAtBcryptLimit() {
	ctx := context.Background()
	suite.mockRepo.On("FindIdentityByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "a@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveIdentity", ctx, mock.Anything).Return(nil).Once()

	res, err := suite.service.Register(ctx, dto.RegisterRequest{Username: "alice", Password: strings.Repeat("p", 72), Email: "a@example.com"})

	suite.Require().NoError(err)
	suite.NotEmpty(res.Token)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownIdentityStillComparesHash() {
	ctx := context.Background()
	var compared []string
	services.SetPasswordChecker(suite.service, func(password, hash string) bool {
		compared = append(compared, hash)
		return false
	})
	suite.mockRepo.On("FindIdentityByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindIdentityByEmail", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "secret1"})

	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Require().Len(compared, 1)
	cost, costErr := bcrypt.Cost([]byte(compared[0]))
	suite.Require().NoError(costErr)
	suite.Equal(utils.PasswordCost, cost)
}
