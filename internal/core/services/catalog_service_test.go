package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	catalogRepo *MockCatalogRepository
	clientRepo  *MockClientRepository
	catalog     portssvc.CatalogSvcFacade
	clients     portssvc.ClientSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.catalogRepo = new(MockCatalogRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.catalog = services.NewCatalogService(suite.catalogRepo, services.WithClock(fixedClock))
	suite.clients = services.NewClientService(suite.clientRepo, services.WithClock(fixedClock))
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (suite *CatalogServiceTestSuite) TestSetServiceFee_Upserts() {
	ctx := context.Background()
	suite.catalogRepo.On("FindServiceByID", ctx, int64(3)).Return(&domain.Service{ServiceID: 3}, nil).Once()
	suite.catalogRepo.On("UpsertFee", ctx, mock.MatchedBy(func(f *domain.ServiceFee) bool {
		return f.ServiceID == 3 && f.FeePerDayPerEmployee.Equal(decimal.RequireFromString("99.90"))
	})).Return(nil).Once()

	fee, err := suite.catalog.SetServiceFee(ctx, 3, dto.SetServiceFeeRequest{FeePerDayPerEmployee: decimal.RequireFromString("99.90")})

	suite.Require().NoError(err)
	suite.Equal(fixedNow, fee.UpdatedAt)
	suite.catalogRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestSetServiceFee_Negative() {
	_, err := suite.catalog.SetServiceFee(context.Background(), 3, dto.SetServiceFeeRequest{FeePerDayPerEmployee: decimal.NewFromInt(-1)})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.catalogRepo.AssertNotCalled(suite.T(), "UpsertFee", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestSetServiceFee_UnknownService() {
	ctx := context.Background()
	suite.catalogRepo.On("FindServiceByID", ctx, int64(4)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.catalog.SetServiceFee(ctx, 4, dto.SetServiceFeeRequest{FeePerDayPerEmployee: decimal.NewFromInt(1)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestDeleteService_StillReferenced() {
	ctx := context.Background()
	suite.catalogRepo.On("DeleteService", ctx, int64(3)).Return(apperrors.ErrConflict).Once()

	err := suite.catalog.DeleteService(ctx, 3)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Equal("Service is still used by employees or subscriptions", apperrors.PublicMessage(err, ""))
}

func (suite *CatalogServiceTestSuite) TestCreateClient_DuplicateCode() {
	ctx := context.Background()
	suite.clientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Code == "ACME" && c.IsActive && c.Version == 1
	})).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.clients.CreateClient(ctx, dto.CreateClientRequest{Code: " ACME ", Name: "Acme"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Client code already exists", err.Error())
}

func (suite *CatalogServiceTestSuite) TestListClients_ClampsPaging() {
	ctx := context.Background()
	suite.clientRepo.On("ListClients", ctx, 200, 0).Return([]domain.Client{}, nil).Once()

	_, err := suite.clients.ListClients(ctx, 5000, -3)

	suite.NoError(err)
	suite.clientRepo.AssertExpectations(suite.T())
}
