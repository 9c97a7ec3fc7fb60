package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is the result of one extraction: a background colour and up to
// three accents. Accents are filled in order, so Secondary is only set when
// Primary is, and Tertiary only when Secondary is.
type Palette struct {
	Background RGB
	Primary    *RGB
	Secondary  *RGB
	Tertiary   *RGB
}

// Accents returns the present accents in order.
func (p *Palette) Accents() []RGB {
	var accents []RGB
	for _, c := range []*RGB{p.Primary, p.Secondary, p.Tertiary} {
		if c == nil {
			break
		}
		accents = append(accents, *c)
	}
	return accents
}

// Role names a slot in the palette.
type Role string

const (
	RoleBackground Role = "background"
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleTertiary   Role = "tertiary"
)

// Entry is one present colour of a palette with its role.
type Entry struct {
	Role   Role
	Colour RGB
}

// Entries returns the background followed by the present accents.
func (p *Palette) Entries() []Entry {
	entries := []Entry{{Role: RoleBackground, Colour: p.Background}}
	roles := []Role{RolePrimary, RoleSecondary, RoleTertiary}
	for i, c := range p.Accents() {
		entries = append(entries, Entry{Role: roles[i], Colour: c})
	}
	return entries
}

// ColourJSON represents a color in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format. Absent accents are
// omitted.
type PaletteJSON struct {
	Background ColourJSON  `json:"background"`
	Primary    *ColourJSON `json:"primary,omitempty"`
	Secondary  *ColourJSON `json:"secondary,omitempty"`
	Tertiary   *ColourJSON `json:"tertiary,omitempty"`
}

func colourJSON(c *RGB) *ColourJSON {
	if c == nil {
		return nil
	}
	return &ColourJSON{Hex: c.Hex(), RGB: *c}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	out := PaletteJSON{
		Background: *colourJSON(&p.Background),
		Primary:    colourJSON(p.Primary),
		Secondary:  colourJSON(p.Secondary),
		Tertiary:   colourJSON(p.Tertiary),
	}
	return json.MarshalIndent(out, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	var sb strings.Builder
	for _, e := range p.Entries() {
		fmt.Fprintf(&sb, "%-10s %s (%s)\n", e.Role, e.Colour.Hex(), e.Colour.String())
	}
	return sb.String()
}
