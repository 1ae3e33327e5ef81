package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/query"
)

const (
	ansiHighlight = "\x1b[1;33m"
	ansiReset     = "\x1b[0m"
)

// renderUser formats one list line. When a search query is active, the
// matching substring in name and email is emphasized (ANSI on terminals,
// [brackets] otherwise).
func renderUser(u models.User, searchQuery string, colored bool) string {
	name := renderHighlighted(query.Highlight(u.Name, searchQuery), colored)
	email := renderHighlighted(query.Highlight(u.Email, searchQuery), colored)
	return fmt.Sprintf("%s  %s <%s>  updated %s", u.ID, name, email, formatRelative(u.UpdatedAt, time.Now()))
}

func renderHighlighted(h query.HighlightResult, colored bool) string {
	var b strings.Builder
	for _, part := range h.Parts {
		switch {
		case !part.Highlight:
			b.WriteString(part.Text)
		case colored:
			b.WriteString(ansiHighlight + part.Text + ansiReset)
		default:
			b.WriteString("[" + part.Text + "]")
		}
	}
	return b.String()
}

// formatRelative renders a timestamp relative to now for recent events and
// as a plain date once it is older than a week.
func formatRelative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
