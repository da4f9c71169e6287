package pages

import (
	"fmt"
	"io"
	"strings"
)

const barWidth = 20

func header(w io.Writer, title, subtitle string) {
	fmt.Fprintf(w, "== %s ==\n", title)
	if subtitle != "" {
		fmt.Fprintln(w, subtitle)
	}
	fmt.Fprintln(w)
}

// bar draws pct (clamped to 0..100) as a fixed-width gauge.
func bar(pct int) string {
	pct = min(max(pct, 0), 100)
	filled := pct * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// thousands formats n with comma separators: 2450 -> "2,450".
func thousands(n int) string {
	s := fmt.Sprint(n)
	if n < 0 {
		return "-" + thousands(-n)
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
