package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/securedocs/docvault/internal/core/domain"
)

// DocumentRepository persists document metadata in the documents table.
type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = "id, user_id, filename, originalname, digital_signature, created_at, updated_at"

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	query := `INSERT INTO documents (user_id, filename, originalname, digital_signature, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		doc.UserID, doc.Filename, doc.OriginalName, doc.DigitalSignature,
		doc.CreatedAt, doc.UpdatedAt).Scan(&doc.ID)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) FindByFilename(ctx context.Context, filename string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE filename = $1`

	doc, err := scanDocument(r.db.QueryRowContext(ctx, query, filename))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("Not found file %s", filename)
		}
		return nil, fmt.Errorf("find document by filename: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Document, error) {
	if len(ids) == 0 {
		return []domain.Document{}, nil
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id IN (` + inClause(len(ids)) + `)`

	rows, err := r.db.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("find documents by ids: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents by owner: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var d domain.Document
	var userID sql.NullInt64
	err := row.Scan(&d.ID, &userID, &d.Filename, &d.OriginalName, &d.DigitalSignature, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.UserID = userID.Int64
	return &d, nil
}

func collectDocuments(rows *sql.Rows) ([]domain.Document, error) {
	docs := []domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
