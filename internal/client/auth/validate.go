// Package auth validates login input and checks it against the built-in
// demo account.
package auth

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

const MinPasswordLength = 6

const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email address"
	msgPasswordRequired = "Password is required"
	msgPasswordTooShort = "Password must be at least 6 characters"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

// FieldErrors maps each failing field to a message. An empty string means
// the field passed.
type FieldErrors struct {
	Email    string
	Password string
}

// OK reports whether no field failed.
func (f FieldErrors) OK() bool {
	return f.Email == "" && f.Password == ""
}

// ValidateCredentials checks both fields independently and reports the first
// failing rule for each.
func ValidateCredentials(c models.Credentials) FieldErrors {
	return FieldErrors{
		Email:    validateEmail(c.Email),
		Password: validatePassword(c.Password),
	}
}

func validateEmail(email string) string {
	switch {
	case email == "":
		return msgEmailRequired
	case !emailRegex.MatchString(email):
		return msgEmailInvalid
	}
	return ""
}

func validatePassword(password string) string {
	switch {
	case password == "":
		return msgPasswordRequired
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return msgPasswordTooShort
	}
	return ""
}
