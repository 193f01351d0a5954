package repositories

import (
	"context"

	"leadflow.backend/internal/domain/entities"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// LeadRepository defines lead persistence and aggregation operations.
// A nil filter matches every lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	GetByID(ctx context.Context, id string) (*entities.Lead, error)
	Count(ctx context.Context, filter entities.Filter) (int64, error)
	List(ctx context.Context, filter entities.Filter, sort entities.SortSpec, limit, offset int) ([]*entities.Lead, error)
	CountByStatus(ctx context.Context, status entities.LeadStatus) (int64, error)
	SumValue(ctx context.Context) (float64, error)
	CountByStageGroups(ctx context.Context) (map[entities.Stage]int64, error)
	CountByStatusGroups(ctx context.Context) (map[entities.LeadStatus]int64, error)
	TopSources(ctx context.Context, limit int) ([]entities.SourceCount, error)
}
