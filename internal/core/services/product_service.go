package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	clientRepo  portsrepo.ClientReader
	notifier    portssvc.NotificationSvc
}

// NewProductService creates the product service.
func NewProductService(
	productRepo portsrepo.ProductRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	notifier portssvc.NotificationSvc,
	options ...ServiceOption,
) portssvc.ProductSvcFacade {
	svc := &productService{
		productRepo: productRepo,
		clientRepo:  clientRepo,
		notifier:    notifier,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) RegisterProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price", "Price must not be negative")
	}
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("clientId", "Client does not exist")
		}
		return nil, fmt.Errorf("failed to get client %d: %w", req.ClientID, err)
	}

	now := s.Now()
	registeredAt := now
	if req.RegisteredAt != nil {
		registeredAt = req.RegisteredAt.UTC()
	}
	product := &domain.Product{
		ClientID:     req.ClientID,
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		RegisteredAt: registeredAt,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Product code already exists for this client")
		}
		s.LogError(ctx, err, "Failed to save product", slog.Int64("client_id", req.ClientID))
		return nil, fmt.Errorf("failed to register product: %w", err)
	}

	s.LogInfo(ctx, "Product registered",
		slog.Int64("product_id", product.ProductID),
		slog.Int64("client_id", product.ClientID))

	s.notifier.NotifyProductRegistered(ctx, client, product)
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, params.ClientID, portsrepo.NormalizeLimit(params.Limit), max(params.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	return nil
}
