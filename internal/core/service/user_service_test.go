package service

import (
	"context"
	"errors"
	"testing"

	"github.com/securedocs/docvault/internal/core/domain"
)

type stubUserRepo struct {
	byID map[int64]domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	clone := *user
	clone.ID = int64(len(r.byID) + 1)
	r.byID[clone.ID] = clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		clone := u
		return &clone, nil
	}
	return nil, domain.NotFoundf("User #%d not found", id)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.NotFoundf("User not found")
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	users := []domain.User{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range r.byID {
		users = append(users, u)
	}
	return users, nil
}

func seededUserRepo(ids ...int64) *stubUserRepo {
	repo := &stubUserRepo{byID: make(map[int64]domain.User)}
	for _, id := range ids {
		repo.byID[id] = domain.User{ID: id}
	}
	return repo
}

func TestUserService_FindByIDs_AllResolved(t *testing.T) {
	svc := NewUserService(seededUserRepo(1, 2, 3))

	users, err := svc.FindByIDs(context.Background(), []int64{1, 3})
	if err != nil {
		t.Fatalf("FindByIDs returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserService_FindByIDs_AllOrNothing(t *testing.T) {
	svc := NewUserService(seededUserRepo(1, 2))

	users, err := svc.FindByIDs(context.Background(), []int64{1, 99})
	if !errors.Is(err, domain.ErrUsersNotFound) {
		t.Fatalf("expected ErrUsersNotFound, got %v", err)
	}
	if users != nil {
		t.Fatalf("expected no partial result, got %v", users)
	}
	if err.Error() != "trusted or not found users" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUserService_FindByIDs_DuplicateIDsInOneRequest(t *testing.T) {
	svc := NewUserService(seededUserRepo(1, 2))

	// The SQL IN list collapses duplicates, so the resolved count falls
	// short of the requested count and the whole call fails.
	_, err := svc.FindByIDs(context.Background(), []int64{1, 1})
	if !errors.Is(err, domain.ErrUsersNotFound) {
		t.Fatalf("expected ErrUsersNotFound for duplicate ids, got %v", err)
	}
}

func TestUserService_FindByIDs_Empty(t *testing.T) {
	svc := NewUserService(seededUserRepo(1))

	users, err := svc.FindByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("FindByIDs returned error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty result, got %d users", len(users))
	}
}
