package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/postview/internal/client/auth"
	"github.com/dmitrijs2005/postview/internal/client/models"
	"github.com/dmitrijs2005/postview/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and a hidden password. Field errors from the
// validator are shown without contacting the session; an authentication
// failure shows the session's message and then clears it.
//
// The password buffer is wiped before returning. Only I/O errors are
// returned.
func (a *App) Login(ctx context.Context) error {
	s := a.styles()

	if snap := a.session.Snapshot(); snap.IsAuthenticated {
		a.println(s.muted.Render("Already signed in as " + snap.User.Email))
		return nil
	}

	a.println(s.title.Render("Welcome Back"))
	a.println(s.muted.Render("Sign in to continue"))
	a.println(s.muted.Render("Demo credentials: user@example.com / password123"))

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading email", "err", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading password", "err", err)
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Email: email, Password: string(password)}
	if fe := auth.ValidateCredentials(creds); !fe.OK() {
		if fe.Email != "" {
			a.println(renderError(s, fe.Email))
		}
		if fe.Password != "" {
			a.println(renderError(s, fe.Password))
		}
		return nil
	}

	if !a.session.Login(ctx, creds.Email, creds.Password) {
		a.println(renderError(s, a.session.Snapshot().Error))
		a.session.ClearError()
		return nil
	}

	user := a.session.Snapshot().User
	a.println(s.accent.Render("Signed in as " + user.Name))
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	s := a.styles()
	if !a.isLoggedIn() {
		a.println(s.muted.Render("Not signed in"))
		return nil
	}
	a.session.Logout(ctx)
	a.println(s.muted.Render("Signed out"))
	return nil
}

// Whoami prints the signed-in user and when the session token expires.
func (a *App) Whoami(ctx context.Context) error {
	s := a.styles()
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		a.println(s.muted.Render("Not signed in"))
		return nil
	}

	a.println(s.title.Render(snap.User.Name) + " " + s.muted.Render("<"+snap.User.Email+">"))
	a.println(s.muted.Render("User ID:") + " " + s.text.Render(snap.User.ID))
	if claims, ok := a.codec.Decode(snap.Token); ok && claims.ExpiresAt != nil {
		a.println(s.muted.Render("Session expires:") + " " + s.text.Render(claims.ExpiresAt.Time.Format(time.RFC1123)))
	}
	return nil
}
