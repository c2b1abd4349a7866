package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/db"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	"github.com/insider-navs/backend/internal/pkg/dberrors"
)

// IUserRepository defines database operations for admin and faculty login users
type IUserRepository interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, username, passwordHash string) error
	GetFacultyUserByUsername(ctx context.Context, username string) (*models.FacultyUser, error)
}

// UserRepository handles database operations for login users
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

// GetAdminByUsername retrieves an admin user by exact username
func (r *UserRepository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password
		FROM admin_users
		WHERE username = $1
	`

	var admin models.AdminUser
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &admin, nil
}

// CreateAdmin inserts an admin user with an already-hashed password. Used by
// the startup seed; an existing username is reported as an existence conflict.
func (r *UserRepository) CreateAdmin(ctx context.Context, username, passwordHash string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`,
			username).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking admin existence: %w", err)
		}

		if exists {
			return apperrors.ErrResourceAlreadyExists
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO admin_users (username, password) VALUES ($1, $2)`,
			username, passwordHash)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrResourceAlreadyExists
			}
			return fmt.Errorf("error creating admin user: %w", err)
		}

		return nil
	})
}

// GetFacultyUserByUsername retrieves a faculty login user. The caller is
// expected to pass an already-normalized (lowercased, trimmed) username.
func (r *UserRepository) GetFacultyUserByUsername(ctx context.Context, username string) (*models.FacultyUser, error) {
	query := `
		SELECT id, username, faculty_id
		FROM faculty_users
		WHERE username = $1
	`

	var user models.FacultyUser
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.FacultyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyUserNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty user: %w", err)
	}

	return &user, nil
}
