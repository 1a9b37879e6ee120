package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promobeats/backoffice/internal/api/handler"
	"github.com/promobeats/backoffice/internal/api/middleware"
	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/usecase"
	mongodb "github.com/promobeats/backoffice/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs to assemble the services.
type Deps struct {
	Client   *mongo.Client
	DB       *mongo.Database
	Redis    *redis.Client
	Hasher   ports.PasswordHasher
	Signer   ports.TokenSigner
	Activity ports.ActivityLogger
	TokenTTL string
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Executives get read-only access; writes require admin or super admin. Role
// assignment is additionally restricted to super admins inside the service.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	repos := mongodb.NewRepoSet(d.DB)
	uow := mongodb.NewUnitOfWork(d.Client, d.DB)

	authService := usecase.NewAuthService(repos, d.Hasher, d.Signer, d.TokenTTL, d.Log)
	accountService := usecase.NewAccountService(repos, uow, d.Hasher, d.Activity, d.Log)
	roleService := usecase.NewRoleService(repos, uow, d.Log)
	influencerService := usecase.NewInfluencerService(repos, uow, d.Activity, d.Log)
	brandService := usecase.NewBrandService(repos, uow, d.Activity, d.Log)
	beatService := usecase.NewBeatService(repos, d.Activity, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	roleHandler := handler.NewRoleHandler(roleService)
	influencerHandler := handler.NewInfluencerHandler(influencerService)
	brandHandler := handler.NewBrandHandler(brandService)
	beatHandler := handler.NewBeatHandler(beatService)

	authn := middleware.Auth(d.Signer)
	staff := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin)
	admins := middleware.RBAC(domain.RoleSuperAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authn)

	v1.GET("/roles", roleHandler.List)

	accounts := v1.Group("/accounts", staff)
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)
	accounts.PUT("/:id/roles", accountHandler.AssignRoles, admins)

	v1.GET("/influencers", influencerHandler.List)
	v1.GET("/influencers/:id", influencerHandler.Get)
	v1.POST("/influencers", influencerHandler.Create, staff)
	v1.PUT("/influencers/:id", influencerHandler.Update, staff)
	v1.DELETE("/influencers/:id", influencerHandler.Delete, staff)
	v1.POST("/influencers/:id/profiles", influencerHandler.AddProfile, staff)
	v1.PUT("/profiles/:id", influencerHandler.UpdateProfile, staff)
	v1.DELETE("/profiles/:id", influencerHandler.RemoveProfile, staff)

	v1.GET("/brands", brandHandler.List)
	v1.GET("/brands/:id", brandHandler.Get)
	v1.POST("/brands", brandHandler.Create, staff)
	v1.PUT("/brands/:id", brandHandler.Update, staff)
	v1.DELETE("/brands/:id", brandHandler.Delete, staff)

	v1.GET("/beats", beatHandler.List)
	v1.GET("/beats/:id", beatHandler.Get)
	v1.POST("/beats", beatHandler.Create, staff)
	v1.PUT("/beats/:id", beatHandler.Update, staff)
	v1.DELETE("/beats/:id", beatHandler.Delete, staff)

	return e
}
