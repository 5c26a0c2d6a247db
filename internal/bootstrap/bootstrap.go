package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/roshr/careertrack/internal/app/controllers"
	appMigrations "github.com/roshr/careertrack/internal/app/migrations"
	appRepos "github.com/roshr/careertrack/internal/app/repositories"
	appRoutes "github.com/roshr/careertrack/internal/app/routes"
	appServices "github.com/roshr/careertrack/internal/app/services"
	"github.com/roshr/careertrack/internal/config"
	"github.com/roshr/careertrack/internal/db"
	"github.com/roshr/careertrack/internal/metrics"
	appMiddleware "github.com/roshr/careertrack/internal/middleware"
	"github.com/roshr/careertrack/internal/pkg/filestorage"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CompanyService             appServices.CompanyService
	StudentService             appServices.StudentService
	AcademicPerformanceService appServices.AcademicPerformanceService
	ProjectService             appServices.ProjectService
	SkillService               appServices.SkillService
	JobListingService          appServices.JobListingService

	CompanyController  *appControllers.CompanyController
	StudentController  *appControllers.StudentController
	AcademicController *appControllers.AcademicPerformanceController
	ProjectController  *appControllers.ProjectController
	SkillController    *appControllers.SkillController
	JobController      *appControllers.JobListingController

	Repos       *appRepos.Repositories
	FileStorage *filestorage.LocalStorage
	Registry    *prometheus.Registry
	Metrics     *metrics.Collector
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Registry = prometheus.NewRegistry()
	deps.Metrics = metrics.NewCollector(deps.Registry)

	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.FileStorage, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AcademicPerformanceService = appServices.NewAcademicPerformanceService(deps.Repos.AcademicPerformanceRepository, lgr)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, lgr)
	deps.SkillService = appServices.NewSkillService(deps.Repos.SkillRepository, lgr)
	deps.JobListingService = appServices.NewJobListingService(deps.Repos.JobListingRepository, lgr)

	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AcademicController = appControllers.NewAcademicPerformanceController(deps.AcademicPerformanceService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.SkillController = appControllers.NewSkillController(deps.SkillService)
	deps.JobController = appControllers.NewJobListingController(deps.JobListingService)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestLogger())
	router.Use(deps.Metrics.GinMiddleware())

	appRoutes.SetupRouter(router,
		deps.CompanyController,
		deps.StudentController,
		deps.AcademicController,
		deps.ProjectController,
		deps.SkillController,
		deps.JobController,
	)

	// Operational endpoints
	router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
