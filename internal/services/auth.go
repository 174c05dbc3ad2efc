package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// PasswordCost is the bcrypt cost factor for stored password hashes.
const PasswordCost = bcrypt.DefaultCost

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error)
}

// TokenIssuer signs token pairs and resolves refresh tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (*models.Tokens, error)
	GetRefreshUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a user and signs them in.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.Tokens, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err = svc.writer.Save(ctx, name, email, string(hashedPassword))
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Errorw("user already exists", "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issue(ctx, user.UserID)
}

// Login checks the credentials and returns a fresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.Tokens, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user.UserID)
}

// Refresh exchanges a valid refresh token for a completely new pair.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error) {
	userID, err := svc.tokens.GetRefreshUserID(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "err", err)
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("refresh token owner no longer exists", "user_id", userID)
		return nil, ErrUnauthorized
	}

	return svc.issue(ctx, user.UserID)
}

func (svc *AuthService) issue(ctx context.Context, userID uuid.UUID) (*models.Tokens, error) {
	tokens, err := svc.tokens.Issue(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to issue tokens", "err", err)
		return nil, err
	}
	return tokens, nil
}
