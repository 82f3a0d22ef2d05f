package services

import "github.com/dmitrijs2005/postview/internal/client/models"

// SessionState is one of Unloaded, Loading, Unauthenticated or Authenticated.
type SessionState interface {
	sessionState()
}

// Unloaded is the state before Restore runs.
type Unloaded struct{}

// Loading covers Restore and an in-flight Login.
type Loading struct{}

// Unauthenticated carries the message of the last failed login, if any.
type Unauthenticated struct {
	Err string
}

// Authenticated holds a user together with a token that was valid when the
// state was entered.
type Authenticated struct {
	User  models.User
	Token string
}

func (Unloaded) sessionState()        {}
func (Loading) sessionState()         {}
func (Unauthenticated) sessionState() {}
func (Authenticated) sessionState()   {}

// SessionSnapshot flattens a SessionState for views.
type SessionSnapshot struct {
	User            *models.User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
	Error           string
}

// Snapshot flattens st.
func Snapshot(st SessionState) SessionSnapshot {
	switch v := st.(type) {
	case Unloaded, Loading:
		return SessionSnapshot{IsLoading: true}
	case Unauthenticated:
		return SessionSnapshot{Error: v.Err}
	case Authenticated:
		u := v.User
		return SessionSnapshot{User: &u, Token: v.Token, IsAuthenticated: true}
	default:
		return SessionSnapshot{}
	}
}
