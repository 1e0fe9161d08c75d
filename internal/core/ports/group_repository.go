package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// GroupRepository defines persistence for groups and their membership
// join tables. The Find variants differ only in which relations they
// hydrate; all of them return a domain.NotFoundError for an absent id.
type GroupRepository interface {
	List(ctx context.Context) ([]domain.Group, error)
	FindWithUsers(ctx context.Context, id int64) (*domain.Group, error)
	FindWithDocuments(ctx context.Context, id int64) (*domain.Group, error)
	FindFull(ctx context.Context, id int64) (*domain.Group, error)
	Create(ctx context.Context, group *domain.Group, userIDs []int64) (*domain.Group, error)
	AddUsers(ctx context.Context, groupID int64, userIDs []int64) error
	AddDocuments(ctx context.Context, groupID int64, documentIDs []int64) error
}
