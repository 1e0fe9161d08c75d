package service

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

// DocumentService is the document registry. Metadata lives in the
// repository, content in the blob store; the registry row is always the
// source of truth for existence.
type DocumentService struct {
	repo   ports.DocumentRepository
	users  ports.UserService
	store  ports.BlobStore
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, users ports.UserService, store ports.BlobStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, users: users, store: store, logger: logger}
}

// Upload stores an accepted PDF. The owner must resolve in the user
// directory; the stored filename is server-generated so client-supplied
// names can never collide or traverse paths.
func (s *DocumentService) Upload(ctx context.Context, in ports.UploadDocumentInput) (*domain.Document, error) {
	owner, err := s.users.FindByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	filename := storedFilename(in.OriginalName)
	if err := s.store.Save(ctx, filename, in.Content); err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to store document blob")
		return nil, err
	}

	now := time.Now().UTC()
	doc, err := s.repo.Create(ctx, &domain.Document{
		UserID:           owner.ID,
		Filename:         filename,
		OriginalName:     in.OriginalName,
		DigitalSignature: in.DigitalSignature,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("document_id", doc.ID).Int64("user_id", owner.ID).Str("filename", filename).Msg("document uploaded")
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.List(ctx)
}

func (s *DocumentService) ListForOwner(ctx context.Context, ownerID int64) ([]domain.Document, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *DocumentService) FindByFilename(ctx context.Context, filename string) (*domain.Document, error) {
	return s.repo.FindByFilename(ctx, filename)
}

// FindByIDs resolves a batch of document ids all-or-nothing, same
// contract as the user directory.
func (s *DocumentService) FindByIDs(ctx context.Context, ids []int64) ([]domain.Document, error) {
	docs, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(docs) != len(ids) {
		return nil, domain.ErrDocumentsNotFound
	}
	return docs, nil
}

// Download resolves the filename in the registry first, so an unknown
// filename fails with NotFound before the blob store is touched.
func (s *DocumentService) Download(ctx context.Context, filename string) (io.ReadCloser, error) {
	if _, err := s.repo.FindByFilename(ctx, filename); err != nil {
		return nil, err
	}
	return s.store.Open(ctx, filename)
}

// storedFilename generates a collision-resistant name, keeping the
// original extension when there is one.
func storedFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return uuid.NewString() + ext
}
