package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/imagecolors/internal/colour"
)

// swatchWidth is the width in cells of a preview swatch.
const swatchWidth = 6

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// renderSwatch renders a block of cells filled with c.
func renderSwatch(c colour.RGB, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// formatPreview renders the palette with one swatch per entry.
func formatPreview(p *colour.Palette) string {
	var sb strings.Builder
	for _, e := range p.Entries() {
		fmt.Fprintf(&sb, "%s %-10s %s (%s)\n",
			renderSwatch(e.Colour, swatchWidth), e.Role, e.Colour.Hex(), e.Colour.String())
	}
	return sb.String()
}
