package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

// ErrInvalidCredentials is returned for every failed authentication; it
// never says which field was wrong.
var ErrInvalidCredentials = errors.New("Invalid email or password")

var demoAccount = struct {
	user     models.User
	password string
}{
	user: models.User{
		ID:    "user-001",
		Email: "user@example.com",
		Name:  "Demo User",
	},
	password: "password123",
}

// Authenticate validates c and compares it with the built-in account.
func Authenticate(c models.Credentials) (models.User, error) {
	if !ValidateCredentials(c).OK() {
		return models.User{}, ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(c.Email), []byte(demoAccount.user.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(demoAccount.password))
	if emailOK&passwordOK == 0 {
		return models.User{}, ErrInvalidCredentials
	}

	return demoAccount.user, nil
}
