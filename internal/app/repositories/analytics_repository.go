package repositories

import (
	"context"
	"fmt"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/db"
)

// IAnalyticsRepository defines the aggregate count queries for the dashboard
type IAnalyticsRepository interface {
	GetCounts(ctx context.Context) (*models.AnalyticsCounts, error)
}

// AnalyticsRepository computes aggregate counts over faculty and locations
type AnalyticsRepository struct {
	db *db.PostgresDB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(database *db.PostgresDB) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: database,
	}
}

// GetCounts gathers every dashboard counter in a single query. COUNT never
// returns NULL, so empty tables yield zeros rather than errors.
func (r *AnalyticsRepository) GetCounts(ctx context.Context) (*models.AnalyticsCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM faculty),
			(SELECT COUNT(*) FROM locations),
			(SELECT COUNT(*) FROM faculty WHERE availability),
			(SELECT COUNT(*) FROM faculty WHERE availability AND role = $1),
			(SELECT COUNT(*) FROM faculty WHERE availability AND role = $2)
	`

	var counts models.AnalyticsCounts
	err := r.db.Pool.QueryRow(ctx, query, models.RoleHOD, models.RoleCC).Scan(
		&counts.TotalFaculty,
		&counts.TotalLocations,
		&counts.AvailableFaculty,
		&counts.AvailableHODs,
		&counts.AvailableCCs,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving analytics counts: %w", err)
	}

	return &counts, nil
}
