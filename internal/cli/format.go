package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/imagecolors/internal/colour"
)

// formatPalette formats the palette according to the specified format.
func formatPalette(p *colour.Palette, format string) (string, error) {
	switch format {
	case "text", "":
		return p.String(), nil
	case "hex":
		return formatHex(p), nil
	case "rgb":
		return formatRGB(p), nil
	case "json":
		jsonBytes, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, hex, rgb, json)", format)
	}
}

// formatHex formats the palette as one hex code per line, background first.
func formatHex(p *colour.Palette) string {
	var sb strings.Builder
	for _, e := range p.Entries() {
		sb.WriteString(e.Colour.Hex())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatRGB formats the palette as one rgb() value per line.
func formatRGB(p *colour.Palette) string {
	var sb strings.Builder
	for _, e := range p.Entries() {
		sb.WriteString(e.Colour.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// batchEntry is one image of a directory run in JSON output.
type batchEntry struct {
	Source  string          `json:"source"`
	Palette json.RawMessage `json:"palette,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// formatBatch formats the results of a directory run. Text output is a summary
// table; other formats print each palette under its source. Failed images are
// reported inline.
func formatBatch(results []batchResult, format string) (string, error) {
	if format == "json" {
		entries := make([]batchEntry, 0, len(results))
		for _, r := range results {
			entry := batchEntry{Source: r.source}
			if r.err != nil {
				entry.Error = r.err.Error()
			} else {
				data, err := r.palette.ToJSON()
				if err != nil {
					return "", fmt.Errorf("failed to convert to JSON: %w", err)
				}
				entry.Palette = data
			}
			entries = append(entries, entry)
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	}

	if format == "text" || format == "" {
		return summaryTable(results), nil
	}

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "# %s\n", r.source)
		if r.err != nil {
			fmt.Fprintf(&sb, "error: %v\n", r.err)
			continue
		}
		out, err := formatPalette(r.palette, format)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// summaryTable renders one row per image with its hex colours.
func summaryTable(results []batchResult) string {
	t := newTable("IMAGE", "BACKGROUND", "PRIMARY", "SECONDARY", "TERTIARY")
	for _, r := range results {
		if r.err != nil {
			t.addRow(r.source, "error: "+r.err.Error())
			continue
		}
		cells := []string{r.source}
		for _, e := range r.palette.Entries() {
			cells = append(cells, e.Colour.Hex())
		}
		t.addRow(cells...)
	}
	return t.render()
}
