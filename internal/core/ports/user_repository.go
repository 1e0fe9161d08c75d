package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// UserRepository defines persistence for user records. Lookups that miss
// return a domain.NotFoundError.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users whose ids match; it does NOT fail on a
	// shortfall, the cardinality check is the service's job.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
