package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(t *testing.T, opts ...Option) *JWT {
	t.Helper()
	base := []Option{
		WithAccess("access-secret", 15*time.Minute),
		WithRefresh("refresh-secret", 7*24*time.Hour),
	}
	j, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return j
}

func TestNew_RequiresAllSettings(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"nothing", nil},
		{"missing refresh", []Option{WithAccess("a", time.Minute)}},
		{"missing access", []Option{WithRefresh("r", time.Minute)}},
		{"empty access secret", []Option{WithAccess("", time.Minute), WithRefresh("r", time.Minute)}},
		{"zero refresh exp", []Option{WithAccess("a", time.Minute), WithRefresh("r", 0)}},
		{"negative access exp", []Option{WithAccess("a", -time.Minute), WithRefresh("r", time.Minute)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := New(tt.opts...)
			assert.ErrorIs(t, err, ErrNotConfigured)
			assert.Nil(t, j)
		})
	}
}

func TestJWT_IssueAndValidate(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()
	userID := uuid.New()

	tokens, err := j.Issue(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Equal(t, int64(15*60*1000), tokens.AccessTTLMs)
	assert.Equal(t, int64(7*24*60*60*1000), tokens.RefreshTTLMs)

	gotID, err := j.GetUserID(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	claims, err := j.ValidateRefresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	refreshID, err := j.GetRefreshUserID(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshID)
}

func TestJWT_TokensAreNotInterchangeable(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	tokens, err := j.Issue(ctx, uuid.New())
	require.NoError(t, err)

	_, err = j.ValidateRefresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.GetUserID(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.GetRefreshUserID(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_ExpiredRefreshToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := newTestJWT(t, WithClock(func() time.Time { return issuedAt }))
	validator := newTestJWT(t, WithClock(func() time.Time { return issuedAt.Add(8 * 24 * time.Hour) }))
	ctx := context.Background()

	tokens, err := issuer.Issue(ctx, uuid.New())
	require.NoError(t, err)

	claims, err := validator.ValidateRefresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)

	_, err = validator.GetUserID(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	j1 := newTestJWT(t)
	j2, err := New(WithAccess("other-access", time.Minute), WithRefresh("other-refresh", time.Hour))
	require.NoError(t, err)

	tokens, err := j1.Issue(ctx, uuid.New())
	require.NoError(t, err)

	_, err = j2.ValidateRefresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j2.GetUserID(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_MalformedToken(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	for _, tok := range []string{"", "invalid.token.string", "abc"} {
		_, err := j.ValidateRefresh(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestJWT_NilUserIDRejected(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	tokens, err := j.Issue(ctx, uuid.Nil)
	require.NoError(t, err)

	_, err = j.GetUserID(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = j.ValidateRefresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_UnconfiguredIssuer(t *testing.T) {
	var j JWT
	_, err := j.Issue(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotConfigured)

	var nilJWT *JWT
	_, err = nilJWT.ValidateRefresh(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"15m", 15 * time.Minute, false},
		{"12h", 12 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"3600", time.Hour, false},
		{"", 0, true},
		{"soon", 0, true},
		{"xd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpiration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
