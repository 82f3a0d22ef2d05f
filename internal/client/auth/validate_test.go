package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name string
		in   models.Credentials
		want FieldErrors
	}{
		{
			name: "valid",
			in:   models.Credentials{Email: "user@example.com", Password: "password123"},
			want: FieldErrors{},
		},
		{
			name: "both empty",
			in:   models.Credentials{},
			want: FieldErrors{Email: "Email is required", Password: "Password is required"},
		},
		{
			name: "bad email only",
			in:   models.Credentials{Email: "not-an-email", Password: "secret1"},
			want: FieldErrors{Email: "Please enter a valid email address"},
		},
		{
			name: "short password only",
			in:   models.Credentials{Email: "a@b.io", Password: "12345"},
			want: FieldErrors{Password: "Password must be at least 6 characters"},
		},
		{
			name: "both invalid",
			in:   models.Credentials{Email: "x@", Password: "abc"},
			want: FieldErrors{Email: "Please enter a valid email address", Password: "Password must be at least 6 characters"},
		},
		{
			name: "exactly six runes",
			in:   models.Credentials{Email: "first.last+tag@sub.example.org", Password: "пароль"},
			want: FieldErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCredentials(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == FieldErrors{}, got.OK())
		})
	}
}

func TestValidateCredentials_EmailShapes(t *testing.T) {
	valid := []string{"user@example.com", "a.b-c_d@x-y.co", "u+1@mail.example.travel"}
	invalid := []string{"plain", "@example.com", "user@", "user@example", "user@@example.com", "us er@example.com", "user@-example.com"}

	for _, e := range valid {
		assert.Empty(t, ValidateCredentials(models.Credentials{Email: e, Password: "secret1"}).Email, e)
	}
	for _, e := range invalid {
		assert.Equal(t, "Please enter a valid email address",
			ValidateCredentials(models.Credentials{Email: e, Password: "secret1"}).Email, e)
	}
}
