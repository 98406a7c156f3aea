package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/config"
	"github.com/RabbiPrimon/Calorie-Counter/internal/api"
	"github.com/RabbiPrimon/Calorie-Counter/internal/middleware"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New assembles the gin engine with all flows wired up.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	authService := service.NewAuthService(db, cfg.JWTSecret, redisClient)
	api.RegisterRoutes(router, db, authService, redisClient)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
