package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillingServiceTestSuite struct {
	suite.Suite
	clientRepo  *MockClientRepository
	subRepo     *MockSubscriptionRepository
	catalogRepo *MockCatalogRepository
	service     portssvc.BillingSvc
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.clientRepo = new(MockClientRepository)
	suite.subRepo = new(MockSubscriptionRepository)
	suite.catalogRepo = new(MockCatalogRepository)
	suite.service = services.NewBillingService(suite.clientRepo, suite.subRepo, suite.catalogRepo, services.WithClock(fixedClock))
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func (suite *BillingServiceTestSuite) TestCalculateTotalCost_ClientNotFound() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	res, err := suite.service.CalculateTotalCost(ctx, 9)

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.subRepo.AssertNotCalled(suite.T(), "ListActiveSubscriptionsByClient", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestCalculateTotalCost_NoActiveSubscriptions() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.subRepo.On("ListActiveSubscriptionsByClient", ctx, int64(1)).Return([]domain.Subscription{}, nil).Once()

	res, err := suite.service.CalculateTotalCost(ctx, 1)

	suite.Require().NoError(err)
	suite.True(res.TotalCost.IsZero())
	suite.NotNil(res.Details)
	suite.Empty(res.Details)
	suite.catalogRepo.AssertNotCalled(suite.T(), "FindFeesByServiceIDs", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestCalculateTotalCost_SumsLineItemsAndSkipsUnpriced() {
	ctx := context.Background()
	subs := []domain.Subscription{
		{
			SubscriptionID:    10,
			ServiceID:         100,
			NumberOfEmployees: 2,
			StartDate:         day(2024, 3, 1),
			EndDate:           datePtr(day(2024, 3, 10)),
			IsActive:          true,
		},
		{
			SubscriptionID:    11,
			ServiceID:         200,
			NumberOfEmployees: 1,
			StartDate:         day(2024, 6, 15),
			EndDate:           datePtr(day(2024, 6, 15)),
			IsActive:          true,
		},
		{
			// no fee row for service 300
			SubscriptionID:    12,
			ServiceID:         300,
			NumberOfEmployees: 5,
			StartDate:         day(2024, 1, 1),
			IsActive:          true,
		},
		{
			// ongoing: 2024-06-06 through fixedNow (2024-06-15) is 10 days
			SubscriptionID:    13,
			ServiceID:         100,
			NumberOfEmployees: 1,
			StartDate:         day(2024, 6, 6),
			IsActive:          true,
		},
	}
	fees := map[int64]domain.ServiceFee{
		100: {ServiceID: 100, FeePerDayPerEmployee: decimal.NewFromInt(100)},
		200: {ServiceID: 200, FeePerDayPerEmployee: decimal.RequireFromString("12.50")},
	}
	names := map[int64]domain.Service{
		100: {ServiceID: 100, Name: "Cleaning"},
		200: {ServiceID: 200, Name: "Security"},
		300: {ServiceID: 300, Name: "Gardening"},
	}

	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.subRepo.On("ListActiveSubscriptionsByClient", ctx, int64(1)).Return(subs, nil).Once()
	suite.catalogRepo.On("FindFeesByServiceIDs", ctx, []int64{100, 200, 300}).Return(fees, nil).Once()
	suite.catalogRepo.On("FindServicesByIDs", ctx, []int64{100, 200, 300}).Return(names, nil).Once()

	res, err := suite.service.CalculateTotalCost(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(res.Details, 3)

	suite.Equal(int64(10), res.Details[0].SubscriptionID)
	suite.Equal("Cleaning", res.Details[0].ServiceName)
	suite.Equal(10, res.Details[0].Days)
	suite.True(decimal.NewFromInt(2000).Equal(res.Details[0].Cost))

	suite.Equal(1, res.Details[1].Days)
	suite.True(decimal.RequireFromString("12.5").Equal(res.Details[1].Cost))

	suite.Equal(int64(13), res.Details[2].SubscriptionID)
	suite.Equal(10, res.Details[2].Days)
	suite.True(decimal.NewFromInt(1000).Equal(res.Details[2].Cost))

	suite.True(decimal.RequireFromString("3012.5").Equal(res.TotalCost), "got %s", res.TotalCost)
	suite.catalogRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCalculateTotalCost_FeeLookupFails() {
	ctx := context.Background()
	subs := []domain.Subscription{{SubscriptionID: 1, ServiceID: 5, NumberOfEmployees: 1, StartDate: day(2024, 6, 1), IsActive: true}}

	suite.clientRepo.On("FindClientByID", ctx, int64(1)).Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.subRepo.On("ListActiveSubscriptionsByClient", ctx, int64(1)).Return(subs, nil).Once()
	suite.catalogRepo.On("FindFeesByServiceIDs", ctx, []int64{5}).Return(nil, assert.AnError).Once()

	res, err := suite.service.CalculateTotalCost(ctx, 1)

	suite.Nil(res)
	suite.ErrorIs(err, assert.AnError)
}
