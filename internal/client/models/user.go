// Package models holds the data types shared by postview client packages.
package models

// User is the authenticated principal. It is stored as JSON under the
// session user key.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credentials is the email/password pair typed by the user. It is never
// persisted.
type Credentials struct {
	Email    string
	Password string
}
