package jwt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

var (
	// ErrNotConfigured is returned when a secret or an expiration is missing.
	ErrNotConfigured = errors.New("jwt: access and refresh secrets and expirations must be set")
	// ErrInvalidToken covers malformed, expired and wrongly signed tokens alike.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload carried by both access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT issues and validates access/refresh token pairs.
// Each kind has its own secret and lifetime.
type JWT struct {
	accessSecret  []byte
	accessExp     time.Duration
	refreshSecret []byte
	refreshExp    time.Duration
	now           func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithAccess sets the access token secret and lifetime.
func WithAccess(secret string, exp time.Duration) Option {
	return func(j *JWT) {
		j.accessSecret = []byte(secret)
		j.accessExp = exp
	}
}

// WithRefresh sets the refresh token secret and lifetime.
func WithRefresh(secret string, exp time.Duration) Option {
	return func(j *JWT) {
		j.refreshSecret = []byte(secret)
		j.refreshExp = exp
	}
}

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		if now != nil {
			j.now = now
		}
	}
}

// New creates a JWT. It fails with ErrNotConfigured unless both secrets
// and both lifetimes are set.
func New(opts ...Option) (*JWT, error) {
	j := &JWT{now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	if !j.configured() {
		return nil, ErrNotConfigured
	}
	return j, nil
}

func (j *JWT) configured() bool {
	return j != nil &&
		len(j.accessSecret) > 0 && j.accessExp > 0 &&
		len(j.refreshSecret) > 0 && j.refreshExp > 0
}

// Issue signs a new access/refresh pair for userID.
func (j *JWT) Issue(ctx context.Context, userID uuid.UUID) (*models.Tokens, error) {
	if !j.configured() {
		return nil, ErrNotConfigured
	}

	accessToken, err := j.sign(userID, j.accessSecret, j.accessExp)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := j.sign(userID, j.refreshSecret, j.refreshExp)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &models.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessTTLMs:  j.accessExp.Milliseconds(),
		RefreshTTLMs: j.refreshExp.Milliseconds(),
	}, nil
}

// ValidateRefresh checks a refresh token and returns its claims.
func (j *JWT) ValidateRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	if !j.configured() {
		return nil, ErrNotConfigured
	}
	return j.parse(tokenString, j.refreshSecret)
}

// GetRefreshUserID validates a refresh token and returns the user it was issued for.
func (j *JWT) GetRefreshUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := j.ValidateRefresh(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// GetUserID validates an access token and returns the user it was issued for.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if !j.configured() {
		return uuid.Nil, ErrNotConfigured
	}
	claims, err := j.parse(tokenString, j.accessSecret)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func (j *JWT) sign(userID uuid.UUID, secret []byte, exp time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (j *JWT) parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseExpiration parses a token lifetime such as "15m", "12h" or "7d".
// Bare integers are taken as seconds.
func ParseExpiration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotConfigured
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid expiration %q: %w", s, err)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid expiration %q: %w", s, err)
	}
	return d, nil
}
