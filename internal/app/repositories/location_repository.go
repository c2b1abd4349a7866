package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/db"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	"github.com/insider-navs/backend/internal/pkg/dberrors"
)

// ILocationRepository defines database operations for locations
type ILocationRepository interface {
	GetAll(ctx context.Context) ([]*models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
	Create(ctx context.Context, location *models.Location) error
	Update(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error)
	Delete(ctx context.Context, id string) error
}

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *db.PostgresDB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(database *db.PostgresDB) *LocationRepository {
	return &LocationRepository{
		db: database,
	}
}

const locationColumns = "id, label, subtitle, type"

func scanLocation(row pgx.Row) (*models.Location, error) {
	var location models.Location
	err := row.Scan(
		&location.ID,
		&location.Label,
		&location.Subtitle,
		&location.Type,
	)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetAll retrieves all locations ordered by label
func (r *LocationRepository) GetAll(ctx context.Context) ([]*models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		ORDER BY label ASC
	`, locationColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	return getLocationByID(ctx, r.db.Pool, id)
}

func getLocationByID(ctx context.Context, q Querier, id string) (*models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE id = $1
	`, locationColumns)

	location, err := scanLocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("error retrieving location: %w", err)
	}

	return location, nil
}

// Create inserts a new location after checking the ID is unused. The check
// and the insert run in one transaction.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM locations WHERE id = $1)`,
			location.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking location existence: %w", err)
		}

		if exists {
			return apperrors.ErrLocationAlreadyExists
		}

		query := fmt.Sprintf(`
			INSERT INTO locations (id, label, subtitle, type)
			VALUES ($1, $2, $3, $4)
			RETURNING %s
		`, locationColumns)

		created, err := scanLocation(tx.QueryRow(ctx, query,
			location.ID, location.Label, location.Subtitle, location.Type))
		if err != nil {
			// A concurrent insert can still win the race past the check
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrLocationAlreadyExists
			}
			return fmt.Errorf("error creating location: %w", err)
		}

		*location = *created
		return nil
	})
}

// Update applies the present fields of the patch to an existing location.
// The existence check and the update run in one transaction.
func (r *LocationRepository) Update(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error) {
	var updated *models.Location

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := getLocationByID(ctx, tx, id); err != nil {
			return err
		}

		set := make([]string, 0, 3)
		args := make([]any, 0, 4)
		add := func(column string, arg any) {
			args = append(args, arg)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}

		if patch.Label.Present {
			add("label", patch.Label.Arg())
		}
		if patch.Subtitle.Present {
			add("subtitle", patch.Subtitle.Arg())
		}
		if patch.Type.Present {
			add("type", patch.Type.Arg())
		}

		args = append(args, id)
		query := fmt.Sprintf(`
			UPDATE locations
			SET %s
			WHERE id = $%d
			RETURNING %s
		`, strings.Join(set, ", "), len(args), locationColumns)

		location, err := scanLocation(tx.QueryRow(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("error updating location: %w", err)
		}

		updated = location
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a location by ID. Deleting a location that faculty rows
// still reference surfaces as ErrLocationInUse, detected via the structured
// foreign-key violation code rather than the error text.
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := getLocationByID(ctx, tx, id); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrLocationInUse
			}
			return fmt.Errorf("error deleting location: %w", err)
		}

		return nil
	})
}
