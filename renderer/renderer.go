// Package renderer formats the engine's reports as markdown documents,
// ready to be printed raw or through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates a markdown document. It embeds the builder so the
// report functions can mix Printf calls with the table helpers.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Header writes a table header row followed by its alignment separator.
// Alignments are "l" or "r", one per column.
func (r *mdRenderer) Header(aligns string, labels ...string) {
	r.Row(labels...)
	r.Printf("|")
	for _, a := range aligns {
		if a == 'r' {
			r.Printf("---:|")
		} else {
			r.Printf(":---|")
		}
	}
	r.Printf("\n")
}

// Row writes one table row.
func (r *mdRenderer) Row(cells ...string) {
	r.Printf("|")
	for _, c := range cells {
		r.Printf(" %s |", c)
	}
	r.Printf("\n")
}

// BoldRow writes one table row with every cell in bold.
func (r *mdRenderer) BoldRow(cells ...string) {
	bold := make([]string, len(cells))
	for i, c := range cells {
		bold[i] = "**" + c + "**"
	}
	r.Row(bold...)
}
