package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret12", true},
		{"Abcdefghijklmnopqr19", true},
		{"Sec1", false},
		{"Abcdefghijklmnopqrs19", false},
		{"secret123", false},
		{"SecretPass", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, len(validatePassword(tt.password)) == 0, tt.password)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("john@example.com"))
	assert.False(t, isValidEmail(""))
	assert.False(t, isValidEmail("john"))
	assert.False(t, isValidEmail("John <john@example.com>"))
}

func TestValidateArticle_Trims(t *testing.T) {
	req := ArticleRequest{Name: "  Title ", Description: "\tBody\n"}
	assert.Empty(t, validateArticle(&req))
	assert.Equal(t, "Title", req.Name)
	assert.Equal(t, "Body", req.Description)

	blank := ArticleRequest{Name: "   ", Description: ""}
	assert.Equal(t, []string{"name must not be empty", "description must not be empty"}, validateArticle(&blank))
}
