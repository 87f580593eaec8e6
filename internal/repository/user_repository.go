package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindBySessionToken(ctx context.Context, token string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindBySessionToken finds a user by its current session token.
func (r *userRepository) FindBySessionToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail finds every user colliding with either field. The
// username and the email can each belong to a different row.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("username = ? OR email = ?", username, email).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
