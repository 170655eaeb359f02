package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is a client's engagement with a service over a date range
// (the client_services table). A nil EndDate means the engagement is ongoing.
type Subscription struct {
	SubscriptionID    int64      `json:"id"`
	ClientID          int64      `json:"clientId"`
	ServiceID         int64      `json:"serviceId"`
	EmployeeID        *int64     `json:"employeeId,omitempty"`
	NumberOfEmployees int        `json:"numberOfEmployees"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	IsActive          bool       `json:"isActive"`
	AuditFields
}

// DaysBilled counts calendar days from StartDate through EndDate, or through
// the UTC date of now when the subscription is ongoing. Both ends are
// inclusive, so a subscription that starts and ends on the same day bills one
// day. A range that has not started yet bills zero days.
func (s Subscription) DaysBilled(now time.Time) int {
	start := DateOnly(s.StartDate)
	end := DateOnly(now)
	if s.EndDate != nil {
		end = DateOnly(*s.EndDate)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// Cost is fee × employees × days billed.
func (s Subscription) Cost(feePerDayPerEmployee decimal.Decimal, now time.Time) decimal.Decimal {
	return feePerDayPerEmployee.
		Mul(decimal.NewFromInt(int64(s.NumberOfEmployees))).
		Mul(decimal.NewFromInt(int64(s.DaysBilled(now))))
}
