package colour

import (
	"image"
	"sort"
)

// MinOpacity is the lowest alpha value a pixel needs to be counted. Lower
// values are border and anti-aliasing noise.
const MinOpacity = 50

// Histogram maps colours to the number of opaque pixels that have them.
// It is immutable once built.
type Histogram struct {
	counts map[RGB]int

	// Area is the number of pixels scanned, including skipped transparent ones.
	Area int
}

// RankedColour pairs a colour with its occurrence count.
type RankedColour struct {
	Colour RGB `json:"colour"`
	Count  int `json:"count"`
}

// BuildHistogram counts every pixel of img whose alpha is at least MinOpacity.
func BuildHistogram(img *image.NRGBA) *Histogram {
	bounds := img.Bounds()
	h := &Histogram{
		counts: make(map[RGB]int),
		Area:   bounds.Dx() * bounds.Dy(),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			if px[3] < MinOpacity {
				continue
			}
			h.counts[RGB{R: px[0], G: px[1], B: px[2]}]++
		}
	}

	return h
}

// NewHistogram builds a histogram from precomputed counts. Non-positive
// counts are dropped.
func NewHistogram(counts map[RGB]int, area int) *Histogram {
	h := &Histogram{
		counts: make(map[RGB]int, len(counts)),
		Area:   area,
	}
	for c, n := range counts {
		if n > 0 {
			h.counts[c] = n
		}
	}
	return h
}

// Len returns the number of distinct colours.
func (h *Histogram) Len() int {
	return len(h.counts)
}

// Count returns the occurrences of c.
func (h *Histogram) Count(c RGB) int {
	return h.counts[c]
}

// Entries returns every colour ordered by count descending. Ties are broken
// by the packed RGB value so the order does not depend on map iteration.
func (h *Histogram) Entries() []RankedColour {
	entries := make([]RankedColour, 0, len(h.counts))
	for c, n := range h.counts {
		entries = append(entries, RankedColour{Colour: c, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Colour.packed() < entries[j].Colour.packed()
	})
	return entries
}

func (rgb RGB) packed() uint32 {
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}
