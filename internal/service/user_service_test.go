package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindBySessionToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, auth.NewJWTService("test-secret"))
}

func TestUserService_Register_Success(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
		Return([]model.User{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := newUserService(repo)
	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.False(t, user.Verified)

	// password is stored as a bcrypt hash
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// session token is minted at registration and embeds the submitted credentials
	require.NotNil(t, user.SessionToken)
	claims, err := auth.NewJWTService("test-secret").ValidateToken(*user.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "password123", claims.Password)

	repo.AssertExpectations(t)
}

func TestUserService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing []model.User
		wantErr  error
	}{
		{
			name:     "both fields collide",
			existing: []model.User{{Username: "alice", Email: "alice@example.com"}},
			wantErr:  errors.ErrEmailAndUsernameExist,
		},
		{
			name:     "email collides",
			existing: []model.User{{Username: "someone-else", Email: "alice@example.com"}},
			wantErr:  errors.ErrEmailExists,
		},
		{
			name:     "username collides",
			existing: []model.User{{Username: "alice", Email: "other@example.com"}},
			wantErr:  errors.ErrUsernameExists,
		},
		{
			name: "username and email collide with different users",
			existing: []model.User{
				{Username: "alice", Email: "first@example.com"},
				{Username: "someone-else", Email: "alice@example.com"},
			},
			wantErr: errors.ErrEmailAndUsernameExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("FindByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
				Return(tt.existing, nil)

			svc := newUserService(repo)
			_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
			assert.ErrorIs(t, err, tt.wantErr)

			// conflict must not create a row
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	require.NoError(t, err)
	stored := &model.User{Username: "alice", Email: "alice@example.com", Password: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		user, err := newUserService(repo).Login(context.Background(), "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		_, err := newUserService(repo).Login(context.Background(), "alice@example.com", "nope-nope-nope")
		assert.ErrorIs(t, err, errors.ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := newUserService(repo).Login(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, errors.ErrEmailNotRegistered)
	})
}

func TestUserService_Session(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := newUserService(repo).Session(context.Background(), "")
		assert.ErrorIs(t, err, errors.ErrTokenMissing)
		repo.AssertNotCalled(t, "FindBySessionToken", mock.Anything, mock.Anything)
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindBySessionToken", mock.Anything, "tok").Return(nil, gorm.ErrRecordNotFound)

		_, err := newUserService(repo).Session(context.Background(), "tok")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("unverified user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindBySessionToken", mock.Anything, "tok").
			Return(&model.User{Username: "alice", Verified: false}, nil)

		_, err := newUserService(repo).Session(context.Background(), "tok")
		assert.ErrorIs(t, err, errors.ErrUserNotVerified)
	})

	t.Run("verified user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindBySessionToken", mock.Anything, "tok").
			Return(&model.User{Username: "alice", Verified: true}, nil)

		user, err := newUserService(repo).Session(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})
}
