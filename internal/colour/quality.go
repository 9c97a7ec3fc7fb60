package colour

import (
	"fmt"
	"image"
	"strings"
)

// Quality bounds the longer edge of the buffer that is analysed, trading
// fidelity for speed.
type Quality int

const (
	// QualityOriginal analyses the image at its native size.
	QualityOriginal Quality = iota
	// QualityLowest bounds the longer edge to 50 pixels.
	QualityLowest
	// QualityLow bounds the longer edge to 100 pixels.
	QualityLow
	// QualityMedium bounds the longer edge to 200 pixels.
	QualityMedium
	// QualityHigh bounds the longer edge to 300 pixels.
	QualityHigh
)

// DefaultQuality is used when no quality is requested.
const DefaultQuality = QualityOriginal

var qualityNames = map[Quality]string{
	QualityOriginal: "original",
	QualityLowest:   "lowest",
	QualityLow:      "low",
	QualityMedium:   "medium",
	QualityHigh:     "high",
}

var qualityBounds = map[Quality]int{
	QualityLowest: 50,
	QualityLow:    100,
	QualityMedium: 200,
	QualityHigh:   300,
}

// ValidQualities returns all qualities from fastest to most faithful.
func ValidQualities() []Quality {
	return []Quality{QualityLowest, QualityLow, QualityMedium, QualityHigh, QualityOriginal}
}

// ParseQuality parses a quality name such as "medium".
func ParseQuality(s string) (Quality, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for q, n := range qualityNames {
		if n == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality: %s (valid qualities: %v)", s, ValidQualities())
}

// String returns the quality name.
func (q Quality) String() string {
	if n, ok := qualityNames[q]; ok {
		return n
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// Bound returns the target length of the longer edge in pixels, or 0 for
// QualityOriginal.
func (q Quality) Bound() int {
	return qualityBounds[q]
}

// TargetSize returns the analysis size for an image of size src. The aspect
// ratio is preserved and the longer edge is set to the quality bound, which
// upscales sources smaller than the bound. Fractional pixels are truncated.
func (q Quality) TargetSize(src image.Point) image.Point {
	bound := float64(q.Bound())
	if bound == 0 || src.X <= 0 || src.Y <= 0 {
		return src
	}

	w, h := float64(src.X), float64(src.Y)
	if w < h {
		return image.Pt(int(bound/(h/w)), int(bound))
	}
	return image.Pt(int(bound), int(bound/(w/h)))
}
