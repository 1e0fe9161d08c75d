package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/securedocs/docvault/docs"
	"github.com/securedocs/docvault/internal/api/handler"
	"github.com/securedocs/docvault/internal/api/middleware"
	"github.com/securedocs/docvault/internal/core/ports"
	"github.com/securedocs/docvault/internal/core/service"
	"github.com/securedocs/docvault/internal/infrastructure/config"
	"github.com/securedocs/docvault/internal/infrastructure/db/postgres"
)

// NewRouter wires repositories, services, and handlers into a fully
// configured Echo instance. Routes under /documents and /groups require
// the Authentication cookie; /users and the auth endpoints do not.
func NewRouter(db *sql.DB, store ports.BlobStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())
	e.Use(echoprometheus.NewMiddleware("docvault"))

	userRepo := postgres.NewUserRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	groupRepo := postgres.NewGroupRepository(db)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, cfg.JWTSecret, cfg.ExpiresIn, log)
	documentService := service.NewDocumentService(documentRepo, userService, store, log)
	groupService := service.NewGroupService(groupRepo, userService, documentService, log)

	authHandler := handler.NewAuthHandler(authService, cfg.ExpiresIn)
	userHandler := handler.NewUserHandler(userService)
	documentHandler := handler.NewDocumentHandler(documentService)
	groupHandler := handler.NewGroupHandler(groupService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	e.GET("/users", userHandler.List)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	documents := e.Group("/documents", requireAuth)
	documents.GET("", documentHandler.List)
	documents.POST("", documentHandler.Create)
	documents.GET("/my_documents", documentHandler.MyDocuments)
	documents.GET("/download/:filename", documentHandler.Download)

	groups := e.Group("/groups", requireAuth)
	groups.GET("", groupHandler.List)
	groups.POST("", groupHandler.Create)
	groups.GET("/users/:id", groupHandler.FindWithUsers)
	groups.PUT("/users/:id", groupHandler.AddUsers)
	groups.GET("/documents/:id", groupHandler.FindWithDocuments)
	groups.PUT("/documents/:id", groupHandler.AddDocuments)

	return e
}
