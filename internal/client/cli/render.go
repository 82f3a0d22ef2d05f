package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/postview/internal/client/models"
	"github.com/dmitrijs2005/postview/internal/client/services"
)

const (
	errorColor = lipgloss.Color("#FF3B30")
	cardWidth  = 72
)

// styles is the set of lipgloss styles for one palette.
type styles struct {
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	err     lipgloss.Style
	card    lipgloss.Style
	divider lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, p services.Palette) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		text:    r.NewStyle().Foreground(lipgloss.Color(p.Text)),
		muted:   r.NewStyle().Foreground(lipgloss.Color(p.TextSecondary)),
		accent:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Primary)),
		err:     r.NewStyle().Foreground(errorColor),
		divider: r.NewStyle().Foreground(lipgloss.Color(p.Border)),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1).
			Width(cardWidth),
	}
}

// styles returns the styles of the current theme.
func (a *App) styles() styles {
	return newStyles(a.renderer, services.PaletteFor(a.theme.Theme()))
}

func renderPostList(s styles, posts []models.Post) string {
	if len(posts) == 0 {
		return s.muted.Render("No posts.")
	}

	var b strings.Builder
	for i, p := range posts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.accent.Render(fmt.Sprintf("#%-3d", p.ID)))
		b.WriteString(" ")
		b.WriteString(s.title.Render(p.Title))
		b.WriteString("\n     ")
		b.WriteString(s.muted.Render(firstLine(p.Body)))
	}
	return b.String()
}

func renderPost(s styles, p models.Post) string {
	line := s.divider.Render(strings.Repeat("─", cardWidth-4))
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.muted.Render("Title"),
		s.title.Render(p.Title),
		line,
		s.muted.Render("Body"),
		s.text.Render(p.Body),
		line,
		s.muted.Render("User ID:")+" "+s.text.Render(fmt.Sprint(p.UserID)),
		s.muted.Render("Post ID:")+" "+s.text.Render(fmt.Sprint(p.ID)),
	))
}

func renderError(s styles, msg string) string {
	return s.err.Render(msg)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
