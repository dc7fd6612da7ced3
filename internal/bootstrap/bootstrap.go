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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/tanvir/campushub/internal/app/controllers"
	appMigrations "github.com/tanvir/campushub/internal/app/migrations"
	appRepos "github.com/tanvir/campushub/internal/app/repositories"
	appRoutes "github.com/tanvir/campushub/internal/app/routes"
	appServices "github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/config"
	"github.com/tanvir/campushub/internal/db"
	"github.com/tanvir/campushub/internal/middleware"
	pkgAuth "github.com/tanvir/campushub/internal/pkg/auth"
	"github.com/tanvir/campushub/internal/pkg/logger"
	"github.com/tanvir/campushub/internal/seed"
)

// Dependencies holds every wired application component
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	Controllers *appRoutes.Controllers
}

// LoadConfigAndSetupLogger loads .env and the YAML config, then configures
// the global logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	// .env is optional; environment variables win over the YAML file
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase connects to Postgres, applies migrations and seeds the
// default admin account.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultAdmin(ctx, pool, cfg.Auth.SeedAdminPassword); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway")
	}

	return pool, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) *Dependencies {
	repos := appRepos.NewRepositories(pool)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenTTL(),
		RefreshTokenExp: cfg.RefreshTokenTTL(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService)
	userService := appServices.NewUserService(
		repos.UserRepository,
		repos.StudentRepository,
		repos.FacultyRepository,
		repos.AcademicSemesterRepository,
		repos.AcademicDepartmentRepository,
		cfg.Auth.DefaultPassword,
	)
	semesterService := appServices.NewAcademicSemesterService(repos.AcademicSemesterRepository)
	academicFacultyService := appServices.NewAcademicFacultyService(repos.AcademicFacultyRepository)
	departmentService := appServices.NewAcademicDepartmentService(
		repos.AcademicDepartmentRepository, repos.AcademicFacultyRepository)
	courseService := appServices.NewCourseService(repos.CourseRepository)
	registrationService := appServices.NewSemesterRegistrationService(
		repos.SemesterRegistrationRepository, repos.AcademicSemesterRepository)
	offeredCourseService := appServices.NewOfferedCourseService(
		repos.OfferedCourseRepository,
		repos.SemesterRegistrationRepository,
		repos.AcademicFacultyRepository,
		repos.AcademicDepartmentRepository,
		repos.FacultyRepository,
		repos.CourseRepository,
	)
	studentService := appServices.NewStudentService(repos.StudentRepository, repos.AcademicDepartmentRepository)
	facultyService := appServices.NewFacultyService(repos.FacultyRepository, repos.AcademicDepartmentRepository)

	controllers := &appRoutes.Controllers{
		Auth:                 appControllers.NewAuthController(authService),
		User:                 appControllers.NewUserController(userService),
		AcademicSemester:     appControllers.NewAcademicSemesterController(semesterService),
		AcademicFaculty:      appControllers.NewAcademicFacultyController(academicFacultyService),
		AcademicDepartment:   appControllers.NewAcademicDepartmentController(departmentService),
		Course:               appControllers.NewCourseController(courseService),
		SemesterRegistration: appControllers.NewSemesterRegistrationController(registrationService),
		OfferedCourse:        appControllers.NewOfferedCourseController(offeredCourseService),
		Student:              appControllers.NewStudentController(studentService),
		Faculty:              appControllers.NewFacultyController(facultyService),
	}

	return &Dependencies{
		Repos:       repos,
		JWTService:  jwtService,
		Controllers: controllers,
	}
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	appRoutes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
