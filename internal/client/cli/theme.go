package cli

import (
	"context"

	"github.com/dmitrijs2005/postview/internal/client/services"
)

// Theme prints the current theme, or switches to the one named in args.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printTheme()
		return nil
	}

	t, err := services.ParseTheme(args[0])
	if err != nil {
		a.println(renderError(a.styles(), "Usage: theme [light|dark]"))
		return err
	}
	if err := a.theme.SetTheme(ctx, t); err != nil {
		return err
	}
	a.printTheme()
	return nil
}

// Toggle switches between light and dark.
func (a *App) Toggle(ctx context.Context) error {
	if err := a.theme.Toggle(ctx); err != nil {
		return err
	}
	a.printTheme()
	return nil
}

func (a *App) printTheme() {
	s := a.styles()
	a.println(s.muted.Render("Theme:") + " " + s.accent.Render(string(a.theme.Theme())))
}
