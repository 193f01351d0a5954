package usecases

import (
	"context"

	"leadflow.backend/internal/domain/entities"
	"leadflow.backend/internal/domain/repositories"
)

// searchFields are the fields covered by the free-text search disjunction
var searchFields = []string{"firstName", "lastName", "email", "company", "phone"}

// LeadUsecase translates validated list queries into store filters and
// assembles paginated responses
type LeadUsecase struct {
	leadRepo repositories.LeadRepository
}

// NewLeadUsecase creates a new lead usecase
func NewLeadUsecase(leadRepo repositories.LeadRepository) *LeadUsecase {
	return &LeadUsecase{leadRepo: leadRepo}
}

// BuildFilter converts a validated query into a filter specification.
// A search term becomes an OR of case-insensitive contains predicates;
// every present equality parameter adds an AND term. Returns nil when
// nothing is filtered.
func BuildFilter(q *entities.ListLeadsQuery) entities.Filter {
	var terms []entities.Filter

	if q.Search != "" {
		or := make([]entities.Filter, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, entities.Contains{Field: field, Value: q.Search})
		}
		terms = append(terms, entities.Or{Filters: or})
	}
	if q.Stage != "" {
		terms = append(terms, entities.Equals{Field: "stage", Value: q.Stage})
	}
	if q.Status != "" {
		terms = append(terms, entities.Equals{Field: "status", Value: q.Status})
	}
	if q.Source != "" {
		terms = append(terms, entities.Equals{Field: "source", Value: q.Source})
	}
	if q.Country != "" {
		terms = append(terms, entities.Equals{Field: "country", Value: q.Country})
	}

	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms[0]
	default:
		return entities.And{Filters: terms}
	}
}

// ListLeads runs the filtered count plus a windowed fetch and assembles
// the paginated envelope. The count reflects the filter only, never the
// page window; a page past the end yields an empty data slice.
func (u *LeadUsecase) ListLeads(ctx context.Context, q *entities.ListLeadsQuery) (*entities.LeadPage, error) {
	filter := BuildFilter(q)

	total, err := u.leadRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort := entities.SortSpec{
		Field:      q.SortBy,
		Descending: q.SortOrder == "desc",
	}

	leads, err := u.leadRepo.List(ctx, filter, sort, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}

	return &entities.LeadPage{
		Data: leads,
		Pagination: entities.Pagination{
			Total:      total,
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// GetLead fetches a single lead by its 24-hex identifier
func (u *LeadUsecase) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	return u.leadRepo.GetByID(ctx, id)
}
