package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// ProductSvcFacade defines operations for client products.
type ProductSvcFacade interface {
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
	// RegisterProduct stores a product and e-mails a registration confirmation to the client.
	RegisterProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}
