package di

import (
	"github.com/tkachuk2291/planetarium-api-service/internal/handler"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/internal/storage"
	"github.com/tkachuk2291/planetarium-api-service/pkg/config"
	"github.com/tkachuk2291/planetarium-api-service/pkg/database"
	"github.com/tkachuk2291/planetarium-api-service/pkg/redis"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Redis  *redis.Client
	Images storage.ImageStore

	// Repositories
	ThemeRepo   repository.ThemeRepository
	ShowRepo    repository.ShowRepository
	DomeRepo    repository.DomeRepository
	SessionRepo repository.SessionRepository
	TicketRepo  repository.TicketRepository
	UserRepo    repository.UserRepository

	// Services
	ThemeService   service.ThemeService
	ShowService    service.ShowService
	DomeService    service.DomeService
	SessionService service.SessionService
	BookingService service.BookingService
	AuthService    service.AuthService

	// Handlers
	HealthHandler  *handler.HealthHandler
	ThemeHandler   *handler.ThemeHandler
	ShowHandler    *handler.ShowHandler
	DomeHandler    *handler.DomeHandler
	SessionHandler *handler.SessionHandler
	TicketHandler  *handler.TicketHandler
	UserHandler    *handler.UserHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Images: storage.NewDiskImageStore(cfg.Config.Media.Root),
	}

	// Repositories
	c.ThemeRepo = repository.NewPostgresThemeRepository(c.DB.Pool())
	pgShowRepo := repository.NewPostgresShowRepository(c.DB.Pool())
	if c.Redis != nil {
		c.ShowRepo = repository.NewCachedShowRepository(pgShowRepo, c.Redis)
	} else {
		c.ShowRepo = pgShowRepo
	}
	c.DomeRepo = repository.NewPostgresDomeRepository(c.DB.Pool())
	c.SessionRepo = repository.NewPostgresSessionRepository(c.DB.Pool())
	c.TicketRepo = repository.NewPostgresTicketRepository(c.DB.Pool())
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())

	// Services
	c.ThemeService = service.NewThemeService(c.ThemeRepo)
	c.ShowService = service.NewShowService(c.ShowRepo, c.ThemeRepo, c.Images)
	c.DomeService = service.NewDomeService(c.DomeRepo, c.Images)
	c.SessionService = service.NewSessionService(c.SessionRepo, c.ShowRepo, c.DomeRepo)
	c.BookingService = service.NewBookingService(c.TicketRepo, c.SessionRepo)
	c.AuthService = service.NewAuthService(c.UserRepo, c.Images, service.AuthConfig{
		JWTSecret:      cfg.Config.JWT.Secret,
		AccessTokenTTL: cfg.Config.JWT.AccessTokenTTL,
		Issuer:         cfg.Config.JWT.Issuer,
	})

	// Handlers
	maxUpload := cfg.Config.Media.MaxUploadMB * 1024 * 1024
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.ThemeHandler = handler.NewThemeHandler(c.ThemeService)
	c.ShowHandler = handler.NewShowHandler(c.ShowService, maxUpload)
	c.DomeHandler = handler.NewDomeHandler(c.DomeService, maxUpload)
	c.SessionHandler = handler.NewSessionHandler(c.SessionService)
	c.TicketHandler = handler.NewTicketHandler(c.BookingService)
	c.UserHandler = handler.NewUserHandler(c.AuthService, maxUpload)

	return c
}
