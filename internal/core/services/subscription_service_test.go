package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	subRepo      *MockSubscriptionRepository
	clientRepo   *MockClientRepository
	catalogRepo  *MockCatalogRepository
	employeeRepo *MockEmployeeRepository
	productRepo  *MockProductRepository
	notifier     *MockNotifier
	service      portssvc.SubscriptionSvcFacade
	products     portssvc.ProductSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.subRepo = new(MockSubscriptionRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.catalogRepo = new(MockCatalogRepository)
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.productRepo = new(MockProductRepository)
	suite.notifier = new(MockNotifier)
	suite.service = services.NewSubscriptionService(suite.subRepo, suite.clientRepo, suite.catalogRepo, suite.employeeRepo, services.WithClock(fixedClock))
	suite.products = services.NewProductService(suite.productRepo, suite.clientRepo, suite.notifier, services.WithClock(fixedClock))
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_EndBeforeStart() {
	req := dto.CreateSubscriptionRequest{
		ClientID:          1,
		ServiceID:         2,
		NumberOfEmployees: 1,
		StartDate:         day(2024, 3, 10),
		EndDate:           datePtr(day(2024, 3, 9)),
	}

	_, err := suite.service.CreateSubscription(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.clientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_Success() {
	ctx := context.Background()
	employeeID := int64(40)
	local := time.FixedZone("UTC+7", 7*3600)
	req := dto.CreateSubscriptionRequest{
		ClientID:          1,
		ServiceID:         2,
		EmployeeID:        &employeeID,
		NumberOfEmployees: 3,
		StartDate:         time.Date(2024, 3, 1, 6, 0, 0, 0, local),
	}

	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.catalogRepo.On("FindServiceByID", ctx, int64(2)).Return(&domain.Service{ServiceID: 2}, nil).Once()
	suite.employeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(&domain.Employee{EmployeeID: employeeID}, nil).Once()
	suite.subRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(s *domain.Subscription) bool {
		return s.StartDate.Location() == time.UTC && s.IsActive && s.EndDate == nil
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(3, sub.NumberOfEmployees)
	suite.subRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_UnknownEmployee() {
	ctx := context.Background()
	employeeID := int64(41)
	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.catalogRepo.On("FindServiceByID", ctx, int64(2)).Return(&domain.Service{ServiceID: 2}, nil).Once()
	suite.employeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSubscription(ctx, dto.CreateSubscriptionRequest{
		ClientID: 1, ServiceID: 2, EmployeeID: &employeeID, NumberOfEmployees: 1, StartDate: day(2024, 1, 1),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Employee does not exist", err.Error())
}

func (suite *SubscriptionServiceTestSuite) TestRegisterProduct_NotifiesClient() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 1, Email: "ops@acme.test"}
	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(client, nil).Once()
	suite.productRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.RegisteredAt.Equal(fixedNow) && p.Code == "PRD-1"
	})).Return(nil).Once()
	suite.notifier.On("NotifyProductRegistered", ctx, client, mock.AnythingOfType("*domain.Product")).Once()

	_, err := suite.products.RegisterProduct(ctx, dto.CreateProductRequest{ClientID: 1, Code: "PRD-1", Name: "Widget", Price: decimal.NewFromInt(5)})

	suite.Require().NoError(err)
	suite.notifier.AssertExpectations(suite.T())
}
