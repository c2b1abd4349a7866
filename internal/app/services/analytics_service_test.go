package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insider-navs/backend/internal/app/models"
)

func TestGetAnalytics_DerivesUnavailableCount(t *testing.T) {
	repo := &mockAnalyticsRepository{
		GetCountsFunc: func(ctx context.Context) (*models.AnalyticsCounts, error) {
			return &models.AnalyticsCounts{
				TotalFaculty:     10,
				TotalLocations:   4,
				AvailableFaculty: 6,
				AvailableHODs:    2,
				AvailableCCs:     1,
			}, nil
		},
	}
	service := NewAnalyticsService(repo)

	data, err := service.GetAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), data.TotalFaculty)
	assert.Equal(t, int64(4), data.TotalLocations)
	assert.Equal(t, int64(6), data.AvailableFaculty)
	assert.Equal(t, int64(4), data.UnavailableFaculty)
	assert.Equal(t, int64(2), data.AvailableHODs)
	assert.Equal(t, int64(1), data.AvailableCCs)
	assert.Equal(t, data.TotalFaculty, data.AvailableFaculty+data.UnavailableFaculty)
}

func TestGetAnalytics_EmptyDatabase(t *testing.T) {
	repo := &mockAnalyticsRepository{
		GetCountsFunc: func(ctx context.Context) (*models.AnalyticsCounts, error) {
			return &models.AnalyticsCounts{}, nil
		},
	}
	service := NewAnalyticsService(repo)

	data, err := service.GetAnalytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, data.TotalFaculty)
	assert.Zero(t, data.UnavailableFaculty)
}
