package service

import (
	"context"
	"time"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

// UserService is the user directory. Accounts are created through
// registration and read back; there is no update or delete path.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create persists a new user. The password field must already be a
// digest; hashing is the auth service's responsibility.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Password:  in.Password,
		Email:     in.Email,
		PublicKey: in.PublicKey,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// FindByIDs resolves a batch of ids all-or-nothing: when the returned
// cardinality differs from the requested count (missing row, or a
// duplicate id collapsed by the lookup) the whole call fails. Group
// mutations rely on this as their existence trust boundary.
func (s *UserService) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, domain.ErrUsersNotFound
	}
	return users, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
