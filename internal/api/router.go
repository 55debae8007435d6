package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hobbyhub/community-platform/internal/api/handler"
	"github.com/hobbyhub/community-platform/internal/api/middleware"
	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/service"
	"github.com/hobbyhub/community-platform/internal/infrastructure/config"
	mongodb "github.com/hobbyhub/community-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/hobbyhub/community-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("community"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hobbyRepo := mongodb.NewHobbyRepository(db)
	topicRepo := mongodb.NewTopicRepository(db)
	discussionRepo := mongodb.NewDiscussionRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLSeconds)*time.Second)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, tokenService, hasher, throttle, log)
	userService := service.NewUserService(userRepo, log)
	communityService := service.NewCommunityService(hobbyRepo, topicRepo, discussionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hobbyHandler := handler.NewHobbyHandler(communityService)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)

	// --- Public reads ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.GET("/admin-users", userHandler.ListAdmins)
	e.GET("/moderator-users", userHandler.ListModerators)
	e.GET("/hobbies", hobbyHandler.ListHobbies)
	e.GET("/hobbies/:hobby", hobbyHandler.GetHobby)
	e.GET("/hobbies/:hobby/topics/:topic", hobbyHandler.GetTopic)

	// --- Authenticated mutations ---
	authed := e.Group("", authRequired)
	authed.PUT("/users/me/profile", userHandler.UpdateProfile)
	authed.DELETE("/users/me", userHandler.DeleteMe)
	authed.POST("/hobbies", hobbyHandler.CreateHobby)
	authed.PUT("/hobbies/:hobby", hobbyHandler.EditHobby)
	authed.DELETE("/hobbies/:hobby", hobbyHandler.DeleteHobby)
	authed.POST("/hobbies/:hobby/topics", hobbyHandler.CreateTopic)
	authed.PUT("/hobbies/:hobby/topics/:topic", hobbyHandler.EditTopic)
	authed.DELETE("/hobbies/:hobby/topics/:topic", hobbyHandler.DeleteTopic)
	authed.POST("/hobbies/:hobby/topics/:topic/comments", hobbyHandler.CreateComment)
	authed.PUT("/hobbies/:hobby/topics/:topic/comments/:id", hobbyHandler.EditComment)
	authed.DELETE("/hobbies/:hobby/topics/:topic/comments/:id", hobbyHandler.DeleteComment)

	// --- Admin routes ---
	admin := e.Group("", authRequired, adminOnly)
	admin.PUT("/users/:id/role", userHandler.AssignRole)
	admin.POST("/users/:email/promote", userHandler.Promote)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
