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

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, options ...ServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{clientRepo: clientRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	now := s.Now()
	client := &domain.Client{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       req.Phone,
		Address:     req.Address,
		IsActive:    boolOrDefault(req.IsActive, true),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Client code already exists")
		}
		s.LogError(ctx, err, "Failed to save client", slog.String("code", client.Code))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.Int64("client_id", client.ClientID))
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %d: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, portsrepo.NormalizeLimit(limit), max(offset, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %d: %w", clientID, err)
	}

	existing.Code = strings.TrimSpace(req.Code)
	existing.Name = strings.TrimSpace(req.Name)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.LastUpdatedAt = s.Now()
	existing.Version = req.Version

	if err := s.clientRepo.UpdateClient(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Client code already exists")
		}
		return nil, fmt.Errorf("failed to update client %d: %w", clientID, err)
	}
	return existing, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	s.LogInfo(ctx, "Client deleted", slog.Int64("client_id", clientID))
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
