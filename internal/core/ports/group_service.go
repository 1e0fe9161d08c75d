package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// CreateGroupInput carries a new group's name and initial members.
type CreateGroupInput struct {
	Name    string
	UserIDs []int64
}

// GroupService coordinates group CRUD and membership growth. Membership
// additions validate every referenced id through the user/document
// directories before touching the group.
type GroupService interface {
	List(ctx context.Context) ([]domain.Group, error)
	FindOneWithUsers(ctx context.Context, id int64) (*domain.Group, error)
	FindOneWithDocuments(ctx context.Context, id int64) (*domain.Group, error)
	Create(ctx context.Context, in CreateGroupInput) (*domain.Group, error)
	AddUsers(ctx context.Context, groupID int64, userIDs []int64) (*domain.Group, error)
	AddDocuments(ctx context.Context, groupID int64, documentIDs []int64) (*domain.Group, error)
}
