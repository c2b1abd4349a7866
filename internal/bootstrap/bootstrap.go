package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/insider-navs/backend/internal/app/controllers"
	appMigrations "github.com/insider-navs/backend/internal/app/migrations"
	appRepos "github.com/insider-navs/backend/internal/app/repositories"
	appRoutes "github.com/insider-navs/backend/internal/app/routes"
	appServices "github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/config"
	"github.com/insider-navs/backend/internal/db"
	appMiddleware "github.com/insider-navs/backend/internal/middleware"
	"github.com/insider-navs/backend/internal/pkg/logger"
	"github.com/insider-navs/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	LocationService     appServices.LocationService
	FacultyService      appServices.FacultyService
	FlashNewsService    appServices.FlashNewsService
	AuthService         appServices.AuthService
	AnalyticsService    appServices.AnalyticsService
	LocationController  *appControllers.LocationController
	FacultyController   *appControllers.FacultyController
	FlashNewsController *appControllers.FlashNewsController
	AuthController      *appControllers.AuthController
	AnalyticsController *appControllers.AnalyticsController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		// Seeding problems are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.LocationService = appServices.NewLocationService(deps.Repos.LocationRepository)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.FlashNewsService = appServices.NewFlashNewsService(deps.Repos.FlashNewsRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Repos.AnalyticsRepository)

	deps.LocationController = appControllers.NewLocationController(deps.LocationService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.FlashNewsController = appControllers.NewFlashNewsController(deps.FlashNewsService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupRouter(router,
		deps.LocationController,
		deps.FacultyController,
		deps.FlashNewsController,
		deps.AuthController,
		deps.AnalyticsController,
	)

	return router
}
