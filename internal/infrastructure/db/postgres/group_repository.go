package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/securedocs/docvault/internal/core/domain"
)

// GroupRepository persists groups and their membership join tables.
// Membership inserts rely on the composite primary keys: re-adding an
// existing pair is a no-op via ON CONFLICT DO NOTHING.
type GroupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

func (r *GroupRepository) FindWithUsers(ctx context.Context, id int64) (*domain.Group, error) {
	group, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.Users, err = r.groupUsers(ctx, id); err != nil {
		return nil, err
	}
	return group, nil
}

func (r *GroupRepository) FindWithDocuments(ctx context.Context, id int64) (*domain.Group, error) {
	group, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.Documents, err = r.groupDocuments(ctx, id); err != nil {
		return nil, err
	}
	return group, nil
}

func (r *GroupRepository) FindFull(ctx context.Context, id int64) (*domain.Group, error) {
	group, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.Users, err = r.groupUsers(ctx, id); err != nil {
		return nil, err
	}
	if group.Documents, err = r.groupDocuments(ctx, id); err != nil {
		return nil, err
	}
	return group, nil
}

// Create inserts the group row and its initial membership in one
// transaction.
func (r *GroupRepository) Create(ctx context.Context, group *domain.Group, userIDs []int64) (*domain.Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO groups (name, created_at, updated_at)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	if err := tx.QueryRowContext(ctx, query, group.Name, group.CreatedAt, group.UpdatedAt).Scan(&group.ID); err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}

	if err := insertPairs(ctx, tx, "group_users", "user_id", group.ID, userIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit group: %w", err)
	}
	return group, nil
}

func (r *GroupRepository) AddUsers(ctx context.Context, groupID int64, userIDs []int64) error {
	return insertPairs(ctx, r.db, "group_users", "user_id", groupID, userIDs)
}

func (r *GroupRepository) AddDocuments(ctx context.Context, groupID int64, documentIDs []int64) error {
	return insertPairs(ctx, r.db, "group_documents", "document_id", groupID, documentIDs)
}

func (r *GroupRepository) findRow(ctx context.Context, id int64) (*domain.Group, error) {
	var g domain.Group
	err := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM groups WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("Group #%d not found", id)
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return &g, nil
}

func (r *GroupRepository) groupUsers(ctx context.Context, groupID int64) ([]domain.User, error) {
	query := `SELECT u.id, u.password, u.email, u.public_key, u.first_name, u.last_name, u.created_at, u.updated_at
	          FROM users u
	          JOIN group_users gu ON gu.user_id = u.id
	          WHERE gu.group_id = $1
	          ORDER BY u.id`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("load group users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *GroupRepository) groupDocuments(ctx context.Context, groupID int64) ([]domain.Document, error) {
	query := `SELECT d.id, d.user_id, d.filename, d.originalname, d.digital_signature, d.created_at, d.updated_at
	          FROM documents d
	          JOIN group_documents gd ON gd.document_id = d.id
	          WHERE gd.group_id = $1
	          ORDER BY d.id`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("load group documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertPairs(ctx context.Context, db execer, table, column string, groupID int64, ids []int64) error {
	query := `INSERT INTO ` + table + ` (group_id, ` + column + `) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for _, id := range ids {
		if _, err := db.ExecContext(ctx, query, groupID, id); err != nil {
			return fmt.Errorf("insert %s pair: %w", table, err)
		}
	}
	return nil
}
