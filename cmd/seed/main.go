package main

import (
	"context"
	"log"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/config"
	"github.com/harshG775/voting-poll-server/internal/db"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
	"github.com/harshG775/voting-poll-server/internal/service"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Poll{},
		&model.Option{},
		&model.Vote{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	pollRepo := repository.NewPollRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	userService := service.NewUserService(userRepo, jwtService)
	pollService := service.NewPollService(pollRepo, voteRepo)

	user, err := userService.Register(ctx, demoUsername, demoEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	// The session endpoint only resolves verified users.
	if err := gormDB.Model(user).Update("verified", true).Error; err != nil {
		log.Fatalf("Failed to verify demo user: %v", err)
	}
	log.Printf("Seeded user %s (%s)", user.Username, user.ID)

	poll, err := pollService.Create(ctx, user.ID, service.CreatePollInput{
		Title:   "Pick one",
		Options: []string{"A", "B"},
	})
	if err != nil {
		log.Fatalf("Failed to seed demo poll: %v", err)
	}
	log.Printf("Seeded poll %q with %d options (%s)", poll.Title, len(poll.Options), poll.ID)

	if user.SessionToken != nil {
		log.Printf("Demo session token: %s", *user.SessionToken)
	}
	log.Println("Seed completed")
}
