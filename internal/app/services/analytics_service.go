package services

import (
	"context"
	"fmt"

	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/repositories"
)

// AnalyticsService defines the dashboard aggregate operation
type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*dto.AnalyticsData, error)
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	analyticsRepo repositories.IAnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo repositories.IAnalyticsRepository) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// GetAnalytics returns the dashboard counters. The unavailable count is
// derived from the total and available counts.
func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context) (*dto.AnalyticsData, error) {
	counts, err := s.analyticsRepo.GetCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving analytics: %w", err)
	}

	return &dto.AnalyticsData{
		TotalFaculty:       counts.TotalFaculty,
		TotalLocations:     counts.TotalLocations,
		AvailableFaculty:   counts.AvailableFaculty,
		UnavailableFaculty: counts.TotalFaculty - counts.AvailableFaculty,
		AvailableHODs:      counts.AvailableHODs,
		AvailableCCs:       counts.AvailableCCs,
	}, nil
}
