package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/metrics"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/repositories"
	"github.com/sbilibin2017/hackhub/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// TokenRevoker invalidates issued tokens before they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
	events  Publisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker, events Publisher) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
		events:  events,
	}
}

// Signup creates an account and returns it with a fresh token.
// username falls back to the local part of the email.
func (svc *AuthService) Signup(ctx context.Context, email, password, username string) (*models.UserDB, string, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateCredentials(email, password, username).Err(); err != nil {
		return nil, "", err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}

	user := &models.UserDB{
		UserID:          uuid.New(),
		Email:           email,
		Username:        username,
		PasswordHash:    string(hashedPassword),
		Visibility:      models.VisibilityPublic,
		XP:              0,
		Level:           1,
		XPNeeded:        ComputeXPNeeded(1, 0),
		ProfileGradient: GenerateGradient(),
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, "", ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, "", err
	}

	svc.events.Publish(ctx, models.EventUserSignedUp, user.UserID)
	return user, token, nil
}

// Login authenticates by email and password and returns the user with a fresh token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, "", err
	}

	svc.events.Publish(ctx, models.EventUserLoggedIn, user.UserID)
	return user, token, nil
}

// Logout revokes the token id until its natural expiry.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "tokenID", tokenID, "error", err)
		return err
	}
	metrics.RevokedTokens.Inc()
	return nil
}
