package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"leadflow.backend/internal/domain/entities"
	domainerrors "leadflow.backend/internal/domain/errors"
	"leadflow.backend/internal/infrastructure/models"
	"leadflow.backend/pkg/objectid"
)

// LeadRepository implements lead data operations and aggregations
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead. A duplicate email maps to ErrAlreadyExists.
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	if lead.ID == "" {
		id, err := objectid.New()
		if err != nil {
			return err
		}
		lead.ID = id
	}

	m := &models.Lead{
		ID:         lead.ID,
		Email:      lead.Email,
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Phone:      lead.Phone,
		Company:    lead.Company,
		Position:   lead.Position,
		Stage:      string(lead.Stage),
		Status:     string(lead.Status),
		Source:     lead.Source,
		Value:      lead.Value,
		Notes:      lead.Notes.Ptr(),
		AssignedTo: lead.AssignedTo.Ptr(),
		Country:    lead.Country,
		City:       lead.City,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	lead.CreatedAt = m.CreatedAt
	lead.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a lead by its 24-hex primary key
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*entities.Lead, error) {
	var m models.Lead
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return leadToEntity(&m), nil
}

// Count counts leads matching the filter, independent of pagination
func (r *LeadRepository) Count(ctx context.Context, filter entities.Filter) (int64, error) {
	query, err := applyFilter(r.db.WithContext(ctx).Model(&models.Lead{}), filter)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// List fetches one window of leads matching the filter, sorted on a
// single key. A window past the end of the collection yields an empty
// slice, not an error.
func (r *LeadRepository) List(ctx context.Context, filter entities.Filter, sort entities.SortSpec, limit, offset int) ([]*entities.Lead, error) {
	query, err := applyFilter(r.db.WithContext(ctx).Model(&models.Lead{}), filter)
	if err != nil {
		return nil, err
	}

	order, err := orderClause(sort)
	if err != nil {
		return nil, err
	}

	var ms []models.Lead
	if err := query.Order(order).Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, err
	}

	leads := make([]*entities.Lead, 0, len(ms))
	for _, m := range ms {
		model := m
		leads = append(leads, leadToEntity(&model))
	}
	return leads, nil
}

// CountByStatus counts leads with the given status
func (r *LeadRepository) CountByStatus(ctx context.Context, status entities.LeadStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("status = ?", string(status)).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumValue sums the value column across all leads, 0 when empty
func (r *LeadRepository) SumValue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Select("COALESCE(SUM(value), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

type groupCount struct {
	Key   string
	Count int64
}

// CountByStageGroups counts leads per stage; stages with no leads are
// absent from the result
func (r *LeadRepository) CountByStageGroups(ctx context.Context) (map[entities.Stage]int64, error) {
	rows, err := r.groupCounts(ctx, "stage")
	if err != nil {
		return nil, err
	}
	result := make(map[entities.Stage]int64, len(rows))
	for _, row := range rows {
		result[entities.Stage(row.Key)] = row.Count
	}
	return result, nil
}

// CountByStatusGroups counts leads per status; statuses with no leads are
// absent from the result
func (r *LeadRepository) CountByStatusGroups(ctx context.Context) (map[entities.LeadStatus]int64, error) {
	rows, err := r.groupCounts(ctx, "status")
	if err != nil {
		return nil, err
	}
	result := make(map[entities.LeadStatus]int64, len(rows))
	for _, row := range rows {
		result[entities.LeadStatus(row.Key)] = row.Count
	}
	return result, nil
}

func (r *LeadRepository) groupCounts(ctx context.Context, column string) ([]groupCount, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopSources returns the sources with the highest lead counts, ordered
// by count descending; ties are broken by source name ascending so the
// result is deterministic.
func (r *LeadRepository) TopSources(ctx context.Context, limit int) ([]entities.SourceCount, error) {
	var rows []entities.SourceCount
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Select("source, COUNT(*) AS count").
		Group("source").
		Order("count DESC, source ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func leadToEntity(m *models.Lead) *entities.Lead {
	return &entities.Lead{
		ID:         m.ID,
		Email:      m.Email,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Phone:      m.Phone,
		Company:    m.Company,
		Position:   m.Position,
		Stage:      entities.Stage(m.Stage),
		Status:     entities.LeadStatus(m.Status),
		Source:     m.Source,
		Value:      m.Value,
		Notes:      null.StringFromPtr(m.Notes),
		AssignedTo: null.StringFromPtr(m.AssignedTo),
		Country:    m.Country,
		City:       m.City,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
