package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Expiration: 1}
}

func TestSignup(t *testing.T) {
	t.Run("creates the user with a bcrypt hash and issues a token", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()

		mockRepo.On("GetUserByEmail", ctx, "singer@example.com").Return(nil, pgx.ErrNoRows)
		mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		resp, err := service.Signup(ctx, &SignupRequest{
			Email:    "singer@example.com",
			Password: "hunter2hunter2",
		})

		require.NoError(t, err)
		require.NotNil(t, resp.User)
		assert.NotEqual(t, uuid.Nil, resp.User.ID)
		assert.Equal(t, "singer@example.com", resp.User.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(resp.User.PasswordHash), []byte("hunter2hunter2")))

		// Token subject must be the new user's ID
		token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		sub, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.String(), sub)
	})

	t.Run("taken email fails with Conflict", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()

		mockRepo.On("GetUserByEmail", ctx, "singer@example.com").
			Return(&User{ID: uuid.New(), Email: "singer@example.com"}, nil)

		_, err := service.Signup(ctx, &SignupRequest{
			Email:    "singer@example.com",
			Password: "hunter2hunter2",
		})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeConflict, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("concurrent duplicate caught at insert fails with Conflict", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()

		// The other signup won the race: the lookup sees nothing but the
		// insert trips the unique index on email.
		mockRepo.On("GetUserByEmail", ctx, "singer@example.com").Return(nil, pgx.ErrNoRows)
		mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).
			Return(fmt.Errorf("failed to create user: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}))

		_, err := service.Signup(ctx, &SignupRequest{
			Email:    "singer@example.com",
			Password: "hunter2hunter2",
		})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeConflict, appErr.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("returns the stored account", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()
		user := &User{ID: uuid.New(), Email: "singer@example.com"}

		mockRepo.On("GetUserByID", ctx, user.ID).Return(user, nil)

		got, err := service.GetUser(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown id fails with NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()
		id := uuid.New()

		mockRepo.On("GetUserByID", ctx, id).
			Return(nil, fmt.Errorf("failed to get user: %w", pgx.ErrNoRows))

		_, err := service.GetUser(ctx, id)

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeNotFound, appErr.Code)
	})

	t.Run("store failure fails with CollaboratorUnavailable", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()
		id := uuid.New()

		mockRepo.On("GetUserByID", ctx, id).Return(nil, errors.New("connection refused"))

		_, err := service.GetUser(ctx, id)

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeCollaboratorUnavailable, appErr.Code)
	})
}

func TestSignin(t *testing.T) {
	newStoredUser := func(password string) *User {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		return &User{ID: uuid.New(), Email: "singer@example.com", PasswordHash: string(hash)}
	}

	t.Run("correct credentials yield a token", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()
		user := newStoredUser("hunter2hunter2")

		mockRepo.On("GetUserByEmail", ctx, "singer@example.com").Return(user, nil)

		resp, err := service.Signin(ctx, &SigninRequest{
			Email:    "singer@example.com",
			Password: "hunter2hunter2",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password fails with Unauthorized", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()

		mockRepo.On("GetUserByEmail", ctx, "singer@example.com").
			Return(newStoredUser("hunter2hunter2"), nil)

		_, err := service.Signin(ctx, &SigninRequest{
			Email:    "singer@example.com",
			Password: "wrong-password",
		})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeUnauthorized, appErr.Code)
	})

	t.Run("unknown email fails the same way as a wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, testJWTConfig())
		ctx := context.Background()

		mockRepo.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, pgx.ErrNoRows)

		_, err := service.Signin(ctx, &SigninRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeUnauthorized, appErr.Code)
	})
}
