package renderer

import (
	"time"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// StatementMarkdown renders the managerial income statement with its
// vertical analysis column.
func StatementMarkdown(st gestao.Statement, year int, month time.Month) string {
	r := newRenderer()

	switch {
	case year == 0:
		r.Printf("# Income Statement — Full History\n\n")
	case month == 0:
		r.Printf("# Income Statement — %d\n\n", year)
	default:
		r.Printf("# Income Statement — %s %d\n\n", month, year)
	}

	r.Header("lrr", "", "Amount", "% of Revenue")
	for _, line := range st.Lines {
		if line.Label[0] == '=' {
			r.BoldRow(line.Label[2:], line.Amount.String(), line.Vertical.String())
		} else {
			r.Row(line.Label, line.Amount.String(), line.Vertical.String())
		}
	}
	r.Printf("\n")

	if st.ActiveMonths > 1 {
		r.Printf("Fixed costs charged for %d active months.\n\n", st.ActiveMonths)
	}
	if st.Breakeven.Achievable {
		r.Printf("Breakeven revenue over the period: **%s**.\n", st.Breakeven.Value)
	} else {
		r.Printf("Breakeven is not reachable over the period.\n")
	}
	if !st.Meaningful {
		r.Printf("\n*No revenue in the period: the percentages are not meaningful.*\n")
	}

	return r.String()
}
