package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"leadflow.backend/internal/domain/entities"
)

func TestBuildFilter_Empty(t *testing.T) {
	assert.Nil(t, BuildFilter(&entities.ListLeadsQuery{}))
}

func TestBuildFilter_SearchOnly(t *testing.T) {
	f := BuildFilter(&entities.ListLeadsQuery{Search: "acme"})

	or, ok := f.(entities.Or)
	require.True(t, ok)
	require.Len(t, or.Filters, 5)

	fields := make([]string, 0, 5)
	for _, term := range or.Filters {
		contains, ok := term.(entities.Contains)
		require.True(t, ok)
		assert.Equal(t, "acme", contains.Value)
		fields = append(fields, contains.Field)
	}
	assert.Equal(t, []string{"firstName", "lastName", "email", "company", "phone"}, fields)
}

func TestBuildFilter_SingleEquality(t *testing.T) {
	f := BuildFilter(&entities.ListLeadsQuery{Stage: "NEW"})
	assert.Equal(t, entities.Equals{Field: "stage", Value: "NEW"}, f)
}

func TestBuildFilter_SearchAndEqualityConjunction(t *testing.T) {
	f := BuildFilter(&entities.ListLeadsQuery{
		Search:  "smith",
		Stage:   "QUALIFIED",
		Status:  "ACTIVE",
		Source:  "Website",
		Country: "USA",
	})

	and, ok := f.(entities.And)
	require.True(t, ok)
	require.Len(t, and.Filters, 5)

	_, ok = and.Filters[0].(entities.Or)
	assert.True(t, ok, "first term is the search disjunction")
	assert.Equal(t, entities.Equals{Field: "stage", Value: "QUALIFIED"}, and.Filters[1])
	assert.Equal(t, entities.Equals{Field: "status", Value: "ACTIVE"}, and.Filters[2])
	assert.Equal(t, entities.Equals{Field: "source", Value: "Website"}, and.Filters[3])
	assert.Equal(t, entities.Equals{Field: "country", Value: "USA"}, and.Filters[4])
}

func TestListLeads_PaginationEnvelope(t *testing.T) {
	var gotLimit, gotOffset int
	var gotSort entities.SortSpec

	u := NewLeadUsecase(leadRepoStub{
		countFn: func(context.Context, entities.Filter) (int64, error) { return 7, nil },
		listFn: func(_ context.Context, _ entities.Filter, sort entities.SortSpec, limit, offset int) ([]*entities.Lead, error) {
			gotSort, gotLimit, gotOffset = sort, limit, offset
			return []*entities.Lead{{ID: "507f1f77bcf86cd799439011"}}, nil
		},
	})

	page, err := u.ListLeads(context.Background(), &entities.ListLeadsQuery{
		Page: 2, Limit: 3, SortBy: "value", SortOrder: "asc",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, gotLimit)
	assert.Equal(t, 3, gotOffset)
	assert.Equal(t, entities.SortSpec{Field: "value", Descending: false}, gotSort)

	assert.Equal(t, int64(7), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 3, page.Pagination.Limit)
	assert.Equal(t, 3, page.Pagination.TotalPages) // ceil(7/3)
	assert.Len(t, page.Data, 1)
}

func TestListLeads_EmptyCollection(t *testing.T) {
	u := NewLeadUsecase(leadRepoStub{
		countFn: func(context.Context, entities.Filter) (int64, error) { return 0, nil },
		listFn: func(context.Context, entities.Filter, entities.SortSpec, int, int) ([]*entities.Lead, error) {
			return []*entities.Lead{}, nil
		},
	})

	page, err := u.ListLeads(context.Background(), &entities.ListLeadsQuery{
		Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: "desc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Pagination.Total)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.Empty(t, page.Data)
}

func TestListLeads_DescendingSort(t *testing.T) {
	var gotSort entities.SortSpec
	u := NewLeadUsecase(leadRepoStub{
		countFn: func(context.Context, entities.Filter) (int64, error) { return 1, nil },
		listFn: func(_ context.Context, _ entities.Filter, sort entities.SortSpec, _, _ int) ([]*entities.Lead, error) {
			gotSort = sort
			return nil, nil
		},
	})

	_, err := u.ListLeads(context.Background(), &entities.ListLeadsQuery{
		Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: "desc",
	})
	require.NoError(t, err)
	assert.True(t, gotSort.Descending)
}

func TestListLeads_CountError(t *testing.T) {
	boom := errors.New("store gone")
	u := NewLeadUsecase(leadRepoStub{
		countFn: func(context.Context, entities.Filter) (int64, error) { return 0, boom },
	})

	_, err := u.ListLeads(context.Background(), &entities.ListLeadsQuery{Page: 1, Limit: 10, SortBy: "createdAt"})
	assert.ErrorIs(t, err, boom)
}

func TestListLeads_ListError(t *testing.T) {
	boom := errors.New("store gone")
	u := NewLeadUsecase(leadRepoStub{
		countFn: func(context.Context, entities.Filter) (int64, error) { return 5, nil },
		listFn: func(context.Context, entities.Filter, entities.SortSpec, int, int) ([]*entities.Lead, error) {
			return nil, boom
		},
	})

	_, err := u.ListLeads(context.Background(), &entities.ListLeadsQuery{Page: 1, Limit: 10, SortBy: "createdAt"})
	assert.ErrorIs(t, err, boom)
}

func TestGetLead(t *testing.T) {
	u := NewLeadUsecase(leadRepoStub{
		getByIDFn: func(_ context.Context, id string) (*entities.Lead, error) {
			return &entities.Lead{ID: id}, nil
		},
	})

	lead, err := u.GetLead(context.Background(), "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", lead.ID)
}
