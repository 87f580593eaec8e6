package main

import (
	"log"
	"net/http"

	_ "github.com/harshG775/voting-poll-server/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/cache"
	"github.com/harshG775/voting-poll-server/internal/config"
	"github.com/harshG775/voting-poll-server/internal/db"
	"github.com/harshG775/voting-poll-server/internal/handler"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
	"github.com/harshG775/voting-poll-server/internal/router"
	"github.com/harshG775/voting-poll-server/internal/service"
)

// @title Voting Poll API
// @version 1.0
// @description Poll and voting API with bearer session authentication.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Poll{},
		&model.Option{},
		&model.Vote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	pollRepo := repository.NewPollRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessionCache(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	pollService := service.NewPollService(pollRepo, voteRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	pollHandler := handler.NewPollHandler(pollService)

	// Register routes
	router.Register(e, cfg, userHandler, pollHandler, userRepo, sessions)

	addr := ":" + cfg.Port
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
