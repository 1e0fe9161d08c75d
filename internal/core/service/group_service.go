package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

// GroupService coordinates group CRUD and membership growth. Every
// referenced id is validated through the user/document directories
// before the group is modified, so a single unknown id fails the whole
// mutation.
type GroupService struct {
	repo      ports.GroupRepository
	users     ports.UserService
	documents ports.DocumentService
	logger    zerolog.Logger
}

func NewGroupService(repo ports.GroupRepository, users ports.UserService, documents ports.DocumentService, logger zerolog.Logger) *GroupService {
	return &GroupService{repo: repo, users: users, documents: documents, logger: logger}
}

// List returns all groups without their relations hydrated.
func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	return s.repo.List(ctx)
}

func (s *GroupService) FindOneWithUsers(ctx context.Context, id int64) (*domain.Group, error) {
	return s.repo.FindWithUsers(ctx, id)
}

func (s *GroupService) FindOneWithDocuments(ctx context.Context, id int64) (*domain.Group, error) {
	return s.repo.FindWithDocuments(ctx, id)
}

// Create persists a new group whose users set equals the resolved ids.
// The documents set starts empty.
func (s *GroupService) Create(ctx context.Context, in ports.CreateGroupInput) (*domain.Group, error) {
	users, err := s.users.FindByIDs(ctx, in.UserIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	group, err := s.repo.Create(ctx, &domain.Group{
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
		Users:     users,
		Documents: []domain.Document{},
	}, in.UserIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("group_id", group.ID).Int("users", len(users)).Msg("group created")
	return group, nil
}

// AddUsers appends the resolved users to the group's membership. The
// returned group reflects plain list-concatenation, so re-adding an
// existing member shows up twice in it; the join table itself dedupes
// on its composite key.
func (s *GroupService) AddUsers(ctx context.Context, groupID int64, userIDs []int64) (*domain.Group, error) {
	group, err := s.repo.FindFull(ctx, groupID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddUsers(ctx, groupID, userIDs); err != nil {
		return nil, err
	}

	group.Users = append(group.Users, users...)
	s.logger.Info().Int64("group_id", groupID).Int("users", len(users)).Msg("users added to group")
	return group, nil
}

// AddDocuments is symmetric to AddUsers. Document ownership is not
// checked: any existing document can be associated with any group.
func (s *GroupService) AddDocuments(ctx context.Context, groupID int64, documentIDs []int64) (*domain.Group, error) {
	group, err := s.repo.FindFull(ctx, groupID)
	if err != nil {
		return nil, err
	}

	documents, err := s.documents.FindByIDs(ctx, documentIDs)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddDocuments(ctx, groupID, documentIDs); err != nil {
		return nil, err
	}

	group.Documents = append(group.Documents, documents...)
	s.logger.Info().Int64("group_id", groupID).Int("documents", len(documents)).Msg("documents added to group")
	return group, nil
}
