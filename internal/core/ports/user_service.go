package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// CreateUserInput carries the fields persisted for a new user. Password
// must already be a bcrypt digest by the time it reaches the directory.
type CreateUserInput struct {
	Password  string
	Email     string
	PublicKey string
	FirstName string
	LastName  string
}

// UserService is the user directory: creation and read-only lookups.
// Users are never updated or deleted through this surface.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs is all-or-nothing: any unresolved id fails the whole call
	// with a NotFoundError. Callers use it as an existence trust boundary.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
