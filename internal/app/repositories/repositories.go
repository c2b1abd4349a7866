package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/insider-navs/backend/internal/db"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same query code runs directly
// on the pool for reads and inside a transaction for mutations.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	LocationRepository  ILocationRepository
	FacultyRepository   IFacultyRepository
	FlashNewsRepository IFlashNewsRepository
	UserRepository      IUserRepository
	AnalyticsRepository IAnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		LocationRepository:  NewLocationRepository(database),
		FacultyRepository:   NewFacultyRepository(database),
		FlashNewsRepository: NewFlashNewsRepository(database),
		UserRepository:      NewUserRepository(database),
		AnalyticsRepository: NewAnalyticsRepository(database),
	}
}
