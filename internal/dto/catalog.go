package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest defines the data needed to add a catalogue service.
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateServiceRequest replaces a catalogue service.
type UpdateServiceRequest struct {
	CreateServiceRequest
	Version int `json:"version" binding:"required,min=1"`
}

// SetServiceFeeRequest sets the daily per-employee fee of a service.
type SetServiceFeeRequest struct {
	FeePerDayPerEmployee decimal.Decimal `json:"feePerDayPerEmployee" binding:"decimalgte0"`
}
