package usecases

import (
	"context"

	"leadflow.backend/internal/domain/entities"
	domainerrors "leadflow.backend/internal/domain/errors"
)

type leadRepoStub struct {
	createFn              func(context.Context, *entities.Lead) error
	getByIDFn             func(context.Context, string) (*entities.Lead, error)
	countFn               func(context.Context, entities.Filter) (int64, error)
	listFn                func(context.Context, entities.Filter, entities.SortSpec, int, int) ([]*entities.Lead, error)
	countByStatusFn       func(context.Context, entities.LeadStatus) (int64, error)
	sumValueFn            func(context.Context) (float64, error)
	countByStageGroupsFn  func(context.Context) (map[entities.Stage]int64, error)
	countByStatusGroupsFn func(context.Context) (map[entities.LeadStatus]int64, error)
	topSourcesFn          func(context.Context, int) ([]entities.SourceCount, error)
}

func (s leadRepoStub) Create(ctx context.Context, lead *entities.Lead) error {
	return s.createFn(ctx, lead)
}

func (s leadRepoStub) GetByID(ctx context.Context, id string) (*entities.Lead, error) {
	return s.getByIDFn(ctx, id)
}

func (s leadRepoStub) Count(ctx context.Context, filter entities.Filter) (int64, error) {
	return s.countFn(ctx, filter)
}

func (s leadRepoStub) List(ctx context.Context, filter entities.Filter, sort entities.SortSpec, limit, offset int) ([]*entities.Lead, error) {
	return s.listFn(ctx, filter, sort, limit, offset)
}

func (s leadRepoStub) CountByStatus(ctx context.Context, status entities.LeadStatus) (int64, error) {
	return s.countByStatusFn(ctx, status)
}

func (s leadRepoStub) SumValue(ctx context.Context) (float64, error) {
	return s.sumValueFn(ctx)
}

func (s leadRepoStub) CountByStageGroups(ctx context.Context) (map[entities.Stage]int64, error) {
	return s.countByStageGroupsFn(ctx)
}

func (s leadRepoStub) CountByStatusGroups(ctx context.Context) (map[entities.LeadStatus]int64, error) {
	return s.countByStatusGroupsFn(ctx)
}

func (s leadRepoStub) TopSources(ctx context.Context, limit int) ([]entities.SourceCount, error) {
	return s.topSourcesFn(ctx, limit)
}

type userRepoStub struct {
	users map[string]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[string]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if user.ID == "" {
		user.ID = "507f1f77bcf86cd799439011"
	}
	s.users[user.Email] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}
