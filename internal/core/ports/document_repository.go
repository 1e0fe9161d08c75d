package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// DocumentRepository defines persistence for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	FindByFilename(ctx context.Context, filename string) (*domain.Document, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Document, error)
}
