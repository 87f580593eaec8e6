package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
)

const bcryptCost = 10

// UserService handles registration, login and session resolution.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Session(ctx context.Context, token string) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and a freshly minted
// session token. The conflict error names the colliding field(s).
func (s *userService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	// the username and the email can collide with different rows
	var emailExists, usernameExists bool
	for _, u := range existing {
		if u.Email == email {
			emailExists = true
		}
		if u.Username == username {
			usernameExists = true
		}
	}
	switch {
	case emailExists && usernameExists:
		return nil, errors.ErrEmailAndUsernameExist
	case emailExists:
		return nil, errors.ErrEmailExists
	case usernameExists:
		return nil, errors.ErrUsernameExists
	}

	token, err := s.jwtService.GenerateSessionToken(username, email, password)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Password:     string(hashedPassword),
		Role:         model.RoleUser,
		Verified:     false,
		SessionToken: &token,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the submitted password against the stored hash. The session
// token issued at registration stays in place; login does not rotate it.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmailNotRegistered
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.ErrWrongPassword
	}

	return user, nil
}

// Session resolves a session token to its verified user.
func (s *userService) Session(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, errors.ErrTokenMissing
	}

	user, err := s.userRepo.FindBySessionToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.Verified {
		return nil, errors.ErrUserNotVerified
	}

	return user, nil
}
