package ports

import (
	"context"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

// AccountRepository defines the persistence interface for the credential store.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
