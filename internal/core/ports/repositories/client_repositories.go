package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient inserts a new client and sets its id, timestamps and version.
	SaveClient(ctx context.Context, client *domain.Client) error

	// UpdateClient replaces a client if its version still matches, bumping the version.
	UpdateClient(ctx context.Context, client *domain.Client) error

	// DeleteClient hard-deletes a client; subscriptions, payments and products cascade.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
