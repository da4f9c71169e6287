package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fitcoach/internal/client/shell"
)

// getStatus renders the prompt prefix: user and page when signed in, then
// connectivity.
func (a *App) getStatus() string {
	var parts []string
	st := a.router.State()
	if st.Status == shell.Authenticated {
		parts = append(parts, st.User.Username, string(st.Page))
	}
	if m := a.Mode(); m != ModeUnknown {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func navBar(current shell.Page) string {
	items := make([]string, len(shell.Pages))
	for i, p := range shell.Pages {
		if p == current {
			items[i] = "*" + p.Label() + "*"
		} else {
			items[i] = p.Label()
		}
	}
	return "FitCoach | " + strings.Join(items, " | ")
}
