package usecases

import (
	"context"

	"leadflow.backend/internal/domain/entities"
	"leadflow.backend/internal/domain/repositories"
)

// topSourcesLimit caps the leadsBySource statistic
const topSourcesLimit = 10

// AnalyticsUsecase computes summary statistics over the lead collection.
// Each sub-statistic is an independent store query; there is no
// cross-query atomicity, so concurrent writes can make the numbers
// disagree slightly. Accepted trade-off for dashboard reads.
type AnalyticsUsecase struct {
	leadRepo repositories.LeadRepository
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(leadRepo repositories.LeadRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{leadRepo: leadRepo}
}

// GetAnalytics assembles the full statistics object
func (u *AnalyticsUsecase) GetAnalytics(ctx context.Context) (*entities.AnalyticsData, error) {
	total, err := u.leadRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	converted, err := u.leadRepo.CountByStatus(ctx, entities.StatusConverted)
	if err != nil {
		return nil, err
	}

	active, err := u.leadRepo.CountByStatus(ctx, entities.StatusActive)
	if err != nil {
		return nil, err
	}

	totalValue, err := u.leadRepo.SumValue(ctx)
	if err != nil {
		return nil, err
	}

	averageValue := float64(0)
	if total > 0 {
		averageValue = totalValue / float64(total)
	}

	byStage, err := u.leadRepo.CountByStageGroups(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := u.leadRepo.CountByStatusGroups(ctx)
	if err != nil {
		return nil, err
	}

	topSources, err := u.leadRepo.TopSources(ctx, topSourcesLimit)
	if err != nil {
		return nil, err
	}

	return &entities.AnalyticsData{
		TotalLeads:     total,
		ConvertedLeads: converted,
		ActiveLeads:    active,
		TotalValue:     totalValue,
		AverageValue:   averageValue,
		LeadsByStage:   byStage,
		LeadsByStatus:  byStatus,
		LeadsBySource:  topSources,
	}, nil
}
