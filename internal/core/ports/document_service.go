package ports

import (
	"context"
	"io"

	"github.com/securedocs/docvault/internal/core/domain"
)

// UploadDocumentInput carries an accepted PDF upload. Content is the
// raw file body; the service decides the stored filename.
type UploadDocumentInput struct {
	OwnerID          int64
	OriginalName     string
	DigitalSignature string
	Content          io.Reader
}

// DocumentService is the document registry plus blob retrieval.
type DocumentService interface {
	Upload(ctx context.Context, in UploadDocumentInput) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]domain.Document, error)
	FindByFilename(ctx context.Context, filename string) (*domain.Document, error)
	// FindByIDs is all-or-nothing, mirroring the user directory contract.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Document, error)
	// Download checks the registry first (NotFound propagates before the
	// blob store is touched), then opens the stored content for streaming.
	Download(ctx context.Context, filename string) (io.ReadCloser, error)
}
