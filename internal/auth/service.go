package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Service handles authentication business logic
type Service struct {
	repo   RepositoryInterface
	secret string
	expiry time.Duration
}

// NewService creates a new auth service
func NewService(repo RepositoryInterface, cfg *config.JWTConfig) *Service {
	return &Service{
		repo:   repo,
		secret: cfg.Secret,
		expiry: time.Duration(cfg.Expiration) * time.Hour,
	}
}

// Signup creates an account and issues its first token. A taken email fails
// with Conflict.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, common.CollaboratorUnavailableError("user store unavailable", err)
	}
	if existing != nil {
		return nil, common.ConflictError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.InternalError("failed to hash password", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Two signups can pass the lookup above at once; the unique index on
		// email settles the race at insert time.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ConflictError("email already registered")
		}
		return nil, common.CollaboratorUnavailableError("user store unavailable", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.InternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Signin verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Signin(ctx context.Context, req *SigninRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.UnauthorizedError("invalid email or password")
		}
		return nil, common.CollaboratorUnavailableError("user store unavailable", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.UnauthorizedError("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.InternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// GetUser looks up the account behind a token subject
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundError("user not found")
		}
		return nil, common.CollaboratorUnavailableError("user store unavailable", err)
	}
	return user, nil
}

// issueToken signs an HS256 token whose subject is the user's ID
func (s *Service) issueToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
