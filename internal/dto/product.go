package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a product for a client.
type CreateProductRequest struct {
	ClientID     int64           `json:"clientId" binding:"required,min=1"`
	Code         string          `json:"code" binding:"required,notblank,max=50"`
	Name         string          `json:"name" binding:"required,notblank,max=200"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"decimalgte0"`
	RegisteredAt *time.Time      `json:"registeredAt"`
}

// ListProductsParams filters products by client.
type ListProductsParams struct {
	ClientID *int64 `form:"clientId" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}
