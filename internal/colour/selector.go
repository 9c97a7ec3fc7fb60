package colour

import (
	"fmt"
	"slices"
)

const (
	// DefaultNoiseFloor is the fraction of the image area a colour must
	// exceed to be considered.
	DefaultNoiseFloor = 0.001

	// backgroundPromotion is the share of the tentative background's count a
	// non-neutral cluster needs to replace a black or white background.
	backgroundPromotion = 0.3
)

// SelectorOptions tunes palette selection.
type SelectorOptions struct {
	// NoiseFloor is the fraction of the histogram area a colour's count must
	// exceed to survive filtering.
	NoiseFloor float64 `json:"noise_floor"`

	// AccentSaturation caps the saturation of accent candidates when > 0.
	AccentSaturation float64 `json:"accent_saturation,omitempty"`

	// FillMissing fills empty accent slots with white on a dark background
	// and black on a light one.
	FillMissing bool `json:"fill_missing,omitempty"`
}

// DefaultSelectorOptions returns the default selector options.
func DefaultSelectorOptions() SelectorOptions {
	return SelectorOptions{
		NoiseFloor: DefaultNoiseFloor,
	}
}

// Validate validates the selector options.
func (o SelectorOptions) Validate() error {
	if o.NoiseFloor < 0 || o.NoiseFloor >= 1 {
		return fmt.Errorf("noise floor must be in [0, 1), got %g", o.NoiseFloor)
	}
	if o.AccentSaturation < 0 || o.AccentSaturation > 1 {
		return fmt.Errorf("accent saturation must be in [0, 1], got %g", o.AccentSaturation)
	}
	return nil
}

// SelectPalette picks a background and up to three accents from h.
func SelectPalette(h *Histogram, opts SelectorOptions) Palette {
	ranked := RankClusters(h, opts.NoiseFloor)
	background := selectBackground(ranked)

	palette := Palette{Background: background}
	selectAccents(&palette, ranked, opts.AccentSaturation)

	if opts.FillMissing {
		fillMissing(&palette)
	}
	return palette
}

// RankClusters drops colours at or under the noise floor, merges colours
// that are not distinct from an existing cluster into it, and returns the
// clusters ordered by count descending.
func RankClusters(h *Histogram, noiseFloor float64) []RankedColour {
	threshold := noiseFloor * float64(h.Area)

	var clusters []RankedColour
	for _, entry := range h.Entries() {
		if float64(entry.Count) <= threshold {
			// Entries are sorted, nothing after this clears the floor.
			break
		}
		merged := false
		for i := range clusters {
			if !Distinct(clusters[i].Colour, entry.Colour) {
				clusters[i].Count += entry.Count
				merged = true
				break
			}
		}
		if !merged {
			clusters = append(clusters, entry)
		}
	}

	slices.SortStableFunc(clusters, func(a, b RankedColour) int {
		return b.Count - a.Count
	})
	return clusters
}

// selectBackground returns the most populous cluster, unless it is black or
// white and a populous non-neutral cluster follows it closely enough.
func selectBackground(ranked []RankedColour) RGB {
	if len(ranked) == 0 {
		return Black
	}

	edge := ranked[0]
	if !edge.Colour.IsBlackOrWhite() {
		return edge.Colour
	}

	for _, candidate := range ranked[1:] {
		if float64(candidate.Count) <= backgroundPromotion*float64(edge.Count) {
			break
		}
		if !candidate.Colour.IsBlackOrWhite() {
			return candidate.Colour
		}
	}
	return edge.Colour
}

// accentSlot tracks which accent is being searched for.
type accentSlot int

const (
	needPrimary accentSlot = iota
	needSecondary
	needTertiary
	slotsFilled
)

func selectAccents(p *Palette, ranked []RankedColour, maxSat float64) {
	var chosen []RGB
	slot := needPrimary

	for _, candidate := range ranked {
		if slot == slotsFilled {
			return
		}

		c := candidate.Colour
		if maxSat > 0 {
			c = c.WithClampedSaturation(maxSat)
		}
		if !acceptsAccent(p.Background, chosen, c) {
			continue
		}

		accent := c
		switch slot {
		case needPrimary:
			p.Primary = &accent
		case needSecondary:
			p.Secondary = &accent
		case needTertiary:
			p.Tertiary = &accent
		}
		chosen = append(chosen, c)
		slot++
	}
}

// acceptsAccent reports whether c is legible on bg and visibly different from
// bg and every accent already chosen.
func acceptsAccent(bg RGB, chosen []RGB, c RGB) bool {
	if !Contrasts(bg, c) || !Distinct(bg, c) {
		return false
	}
	for _, other := range chosen {
		if !Distinct(other, c) {
			return false
		}
	}
	return true
}

func fillMissing(p *Palette) {
	fallback := Black
	if p.Background.IsDark() {
		fallback = White
	}

	for _, slot := range []**RGB{&p.Primary, &p.Secondary, &p.Tertiary} {
		if *slot == nil {
			c := fallback
			*slot = &c
		}
	}
}
