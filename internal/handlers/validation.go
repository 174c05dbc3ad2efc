package handlers

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 20
)

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateRegister(req RegisterRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if !isValidEmail(req.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	errs = append(errs, validatePassword(req.Password)...)
	return errs
}

func validatePassword(password string) []string {
	var errs []string

	if n := utf8.RuneCountInString(password); n < passwordMinLen || n > passwordMaxLen {
		errs = append(errs, "password must be between 8 and 20 characters")
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain at least one digit")
	}

	return errs
}

func validateLogin(req LoginRequest) []string {
	var errs []string
	if !isValidEmail(req.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if req.Password == "" {
		errs = append(errs, "password must not be empty")
	}
	return errs
}

// validateArticle trims the request in place.
func validateArticle(req *ArticleRequest) []string {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	var errs []string
	if req.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if req.Description == "" {
		errs = append(errs, "description must not be empty")
	}
	return errs
}
