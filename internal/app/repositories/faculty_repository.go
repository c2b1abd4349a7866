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

// IFacultyRepository defines database operations for faculty members
type IFacultyRepository interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	UpdateProfile(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error)
	UpdateAvailability(ctx context.Context, id int64, availability bool) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *db.PostgresDB
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(database *db.PostgresDB) *FacultyRepository {
	return &FacultyRepository{
		db: database,
	}
}

const facultyColumns = "id, name, department, school, designation, role, courses_taken, cabin_number, phone_number, availability, location_id"

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var faculty models.Faculty
	err := row.Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Department,
		&faculty.School,
		&faculty.Designation,
		&faculty.Role,
		&faculty.CoursesTaken,
		&faculty.CabinNumber,
		&faculty.PhoneNumber,
		&faculty.Availability,
		&faculty.LocationID,
	)
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetAll retrieves all faculty members ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM faculty
		ORDER BY name ASC
	`, facultyColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faculty := make([]*models.Faculty, 0)
	for rows.Next() {
		member, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculty = append(faculty, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculty, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return getFacultyByID(ctx, r.db.Pool, id)
}

func getFacultyByID(ctx context.Context, q Querier, id int64) (*models.Faculty, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM faculty
		WHERE id = $1
	`, facultyColumns)

	faculty, err := scanFaculty(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return faculty, nil
}

// Create inserts a new faculty member. When a location is supplied, its
// existence is verified in the same transaction so no row is written against
// a missing location.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if faculty.LocationID != nil {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM locations WHERE id = $1)`,
				*faculty.LocationID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("error checking location existence: %w", err)
			}

			if !exists {
				return apperrors.ErrFacultyLocationMissing
			}
		}

		if faculty.CoursesTaken == nil {
			faculty.CoursesTaken = []string{}
		}

		query := fmt.Sprintf(`
			INSERT INTO faculty (name, department, school, designation, role, courses_taken, cabin_number, phone_number, availability, location_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING %s
		`, facultyColumns)

		created, err := scanFaculty(tx.QueryRow(ctx, query,
			faculty.Name,
			faculty.Department,
			faculty.School,
			faculty.Designation,
			faculty.Role,
			faculty.CoursesTaken,
			faculty.CabinNumber,
			faculty.PhoneNumber,
			faculty.Availability,
			faculty.LocationID,
		))
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrFacultyLocationMissing
			}
			return fmt.Errorf("error creating faculty: %w", err)
		}

		*faculty = *created
		return nil
	})
}

// UpdateProfile applies the present fields of the patch to an existing
// faculty member. The existence check and the update run in one transaction.
func (r *FacultyRepository) UpdateProfile(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error) {
	var updated *models.Faculty

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := getFacultyByID(ctx, tx, id); err != nil {
			return err
		}

		set := make([]string, 0, 7)
		args := make([]any, 0, 8)
		add := func(column string, arg any) {
			args = append(args, arg)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}

		if patch.Name.Present {
			add("name", patch.Name.Arg())
		}
		if patch.Department.Present {
			add("department", patch.Department.Arg())
		}
		if patch.Designation.Present {
			add("designation", patch.Designation.Arg())
		}
		if patch.Role.Present {
			add("role", patch.Role.Arg())
		}
		if patch.CabinNumber.Present {
			add("cabin_number", patch.CabinNumber.Arg())
		}
		if patch.PhoneNumber.Present {
			add("phone_number", patch.PhoneNumber.Arg())
		}
		if patch.CoursesTaken.Present {
			add("courses_taken", patch.CoursesTaken.Arg())
		}

		args = append(args, id)
		query := fmt.Sprintf(`
			UPDATE faculty
			SET %s
			WHERE id = $%d
			RETURNING %s
		`, strings.Join(set, ", "), len(args), facultyColumns)

		faculty, err := scanFaculty(tx.QueryRow(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("error updating faculty profile: %w", err)
		}

		updated = faculty
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateAvailability flips the availability flag for an existing faculty member.
func (r *FacultyRepository) UpdateAvailability(ctx context.Context, id int64, availability bool) (*models.Faculty, error) {
	var updated *models.Faculty

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := getFacultyByID(ctx, tx, id); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			UPDATE faculty
			SET availability = $1
			WHERE id = $2
			RETURNING %s
		`, facultyColumns)

		faculty, err := scanFaculty(tx.QueryRow(ctx, query, availability, id))
		if err != nil {
			return fmt.Errorf("error updating faculty availability: %w", err)
		}

		updated = faculty
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a faculty member by ID. The ON DELETE CASCADE on
// faculty_users removes the associated login row in the same statement.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := getFacultyByID(ctx, tx, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting faculty: %w", err)
		}

		return nil
	})
}
