package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	snap := a.session.Snapshot()

	who := "guest"
	switch {
	case snap.IsLoading:
		who = "loading"
	case snap.IsAuthenticated:
		who = snap.User.Email
	}
	return fmt.Sprintf("(%s, %s)", who, a.theme.Theme())
}

// Root prints the banner and serves the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	s := a.styles()
	a.println(s.accent.Render("postview") + " " + s.muted.Render("(type 'help' for commands)"))

	if snap := a.session.Snapshot(); snap.IsAuthenticated {
		a.println(s.muted.Render("Welcome back,") + " " + s.text.Render(snap.User.Name))
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
