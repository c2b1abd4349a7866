package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appRepos "github.com/insider-navs/backend/internal/app/repositories"
	"github.com/insider-navs/backend/internal/config"
	"github.com/insider-navs/backend/internal/db"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	pkgAuth "github.com/insider-navs/backend/internal/pkg/auth"
)

// CreateDefaultData provisions the configured admin account if it is missing.
// Only the bcrypt hash of the configured password ever reaches the database.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(database)

	hash, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = userRepo.CreateAdmin(ctx, cfg.Admin.Username, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Debug().Str("username", cfg.Admin.Username).Msg("Admin user already exists")
			return nil
		}
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	lgr.Info().Str("username", cfg.Admin.Username).Msg("Default admin user created")
	return nil
}
