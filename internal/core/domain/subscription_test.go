package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestSubscription_DaysBilled(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  domain.Subscription
		want int
	}{
		{
			name: "same calendar day start and end",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			},
			want: 1,
		},
		{
			name: "same calendar day with different clock times",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
				EndDate:   timePtr(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)),
			},
			want: 1,
		},
		{
			name: "ten day closed range",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   timePtr(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
			},
			want: 10,
		},
		{
			name: "closed range across a month boundary",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
				EndDate:   timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			},
			want: 3, // 2024 is a leap year: Feb 28, Feb 29, Mar 1
		},
		{
			name: "ongoing subscription started today",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			},
			want: 1,
		},
		{
			name: "ongoing subscription counts through today",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
			want: 10,
		},
		{
			name: "start date in a non-UTC zone is counted by its UTC date",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 3, 11, 5, 0, 0, 0, time.FixedZone("UTC+7", 7*3600)), // 2024-03-10 22:00 UTC
			},
			want: 11,
		},
		{
			name: "future start bills nothing",
			sub: domain.Subscription{
				StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.DaysBilled(now))
		})
	}
}

func TestSubscription_Cost(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	sub := domain.Subscription{
		NumberOfEmployees: 2,
		StartDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           timePtr(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	}

	cost := sub.Cost(decimal.NewFromInt(100), now)

	assert.True(t, decimal.NewFromInt(2000).Equal(cost), "expected 2000, got %s", cost)
}

func TestSubscription_CostWithFractionalFee(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	sub := domain.Subscription{
		NumberOfEmployees: 3,
		StartDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	cost := sub.Cost(decimal.RequireFromString("12.50"), now)

	assert.Equal(t, "37.5", cost.String())
}

func TestSubscription_CostZeroEmployees(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	sub := domain.Subscription{
		NumberOfEmployees: 0,
		StartDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, sub.Cost(decimal.NewFromInt(100), now).IsZero())
}
