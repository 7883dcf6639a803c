package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentapapa/booking-api/internal/api/handler"
	"github.com/rentapapa/booking-api/internal/api/middleware"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// Services bundles the core services the router exposes over HTTP.
type Services struct {
	Tokens       ports.TokenService
	Auth         ports.AuthService
	Users        ports.UserService
	Admins       ports.AdminService
	Papas        ports.PapaService
	Reservations ports.ReservationService
}

// DefaultPolicyTable is the access rule table for the whole API, evaluated
// top to bottom with first match winning. It mirrors the intended access
// model: logins and the papa catalogue reads are public, papa mutations
// and admin management are admin-only, users and reservations take either
// role, everything else needs some identity.
func DefaultPolicyTable() middleware.PolicyTable {
	return middleware.PolicyTable{
		{Pattern: "/auth/**", Outcome: middleware.Public},
		{Pattern: "/health/**", Outcome: middleware.Public},
		{Pattern: "/metrics", Outcome: middleware.Public},
		{Pattern: "/api/v1/papas/**", Methods: []string{http.MethodGet}, Outcome: middleware.Public},
		{Pattern: "/api/v1/papas/**", Outcome: middleware.RoleRestricted, Roles: []domain.Role{domain.RoleAdmin}},
		{Pattern: "/api/v1/admins/**", Outcome: middleware.RoleRestricted, Roles: []domain.Role{domain.RoleAdmin}},
		{Pattern: "/api/v1/users/**", Outcome: middleware.RoleRestricted, Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}},
		{Pattern: "/api/v1/reservas/**", Outcome: middleware.RoleRestricted, Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}},
	}
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(svcs Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("rentapapa_http"))
	e.Use(middleware.Identity(svcs.Tokens))
	e.Use(middleware.Policy(DefaultPolicyTable()))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	userHandler := handler.NewUserHandler(svcs.Users)
	adminHandler := handler.NewAdminHandler(svcs.Admins)
	papaHandler := handler.NewPapaHandler(svcs.Papas)
	reservationHandler := handler.NewReservationHandler(svcs.Reservations)

	// --- Auth routes (public) ---
	e.POST("/auth/login-admin", authHandler.LoginAdmin)
	e.POST("/auth/login-user", authHandler.LoginUser)

	// --- Papa catalogue ---
	papas := e.Group("/api/v1/papas")
	papas.GET("", papaHandler.List)
	papas.GET("/:id", papaHandler.Get)
	papas.POST("", papaHandler.Create)
	papas.PUT("/:id", papaHandler.Update)
	papas.DELETE("/:id", papaHandler.Delete)

	// --- Admin management ---
	admins := e.Group("/api/v1/admins")
	admins.GET("", adminHandler.List)
	admins.GET("/:id", adminHandler.Get)
	admins.POST("", adminHandler.Create)
	admins.PUT("/:id", adminHandler.Update)
	admins.DELETE("/:id", adminHandler.Delete)

	// --- User management ---
	users := e.Group("/api/v1/users")
	users.GET("", userHandler.List)
	users.GET("/active", userHandler.Active)
	users.GET("/inactive", userHandler.Inactive)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/reactivate", userHandler.Reactivate)
	users.DELETE("/:id", userHandler.Delete)

	// --- Reservations ---
	reservas := e.Group("/api/v1/reservas")
	reservas.GET("", reservationHandler.List)
	reservas.GET("/:id", reservationHandler.Get)
	reservas.POST("", reservationHandler.Create)
	reservas.PUT("/:id/cancel", reservationHandler.Cancel)
	reservas.DELETE("/:id", reservationHandler.Delete)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
