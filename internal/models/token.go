package models

// Tokens is a freshly issued access/refresh pair.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`

	// Lifetimes in milliseconds, used as cookie max-age.
	AccessTTLMs  int64 `json:"accessTokenExpiresInMilliseconds"`
	RefreshTTLMs int64 `json:"refreshTokenExpiresInMilliseconds"`
}
