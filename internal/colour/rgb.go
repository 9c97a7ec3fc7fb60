// Package colour provides the colour model and palette extraction algorithm.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/imagecolors/internal/security"
)

// Thresholds used by the colour predicates, on the 8-bit channel scale.
const (
	darkLuminance   = 127.5
	blackCeiling    = 23
	whiteFloor      = 232
	distinctChannel = 63.75
	greyTolerance   = 7.65
	luminanceFloor  = 12.75
	minContrast     = 1.6

)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	// Black is the fallback background for images with no usable pixels.
	Black = RGB{R: 0, G: 0, B: 0}
	// White is the light fallback accent.
	White = RGB{R: 255, G: 255, B: 255}
)

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// luma is the ITU-R BT.709 weighted sum on the 8-bit scale.
func (rgb RGB) luma() float64 {
	return 0.2126*float64(rgb.R) + 0.7152*float64(rgb.G) + 0.0722*float64(rgb.B)
}

// IsDark reports whether the colour reads as dark.
func (rgb RGB) IsDark() bool {
	return rgb.luma() < darkLuminance
}

// IsBlack reports whether every channel is below the black ceiling.
func (rgb RGB) IsBlack() bool {
	return rgb.R < blackCeiling && rgb.G < blackCeiling && rgb.B < blackCeiling
}

// IsWhite reports whether every channel is above the white floor.
func (rgb RGB) IsWhite() bool {
	return rgb.R > whiteFloor && rgb.G > whiteFloor && rgb.B > whiteFloor
}

// IsBlackOrWhite reports whether the colour is near black or near white.
func (rgb RGB) IsBlackOrWhite() bool {
	return rgb.IsBlack() || rgb.IsWhite()
}

// isNearGrey reports whether every pair of channels is within the grey
// tolerance.
func (rgb RGB) isNearGrey() bool {
	r, g, b := float64(rgb.R), float64(rgb.G), float64(rgb.B)
	return math.Abs(r-g) < greyTolerance &&
		math.Abs(r-b) < greyTolerance &&
		math.Abs(g-b) < greyTolerance
}

// Distinct reports whether two colours are visibly different. Two shades of
// the same near-grey are never distinct.
func Distinct(a, b RGB) bool {
	differs := channelDelta(a.R, b.R) > distinctChannel ||
		channelDelta(a.G, b.G) > distinctChannel ||
		channelDelta(a.B, b.B) > distinctChannel
	return differs && !(a.isNearGrey() && b.isNearGrey())
}

func channelDelta(a, b uint8) float64 {
	return math.Abs(float64(a) - float64(b))
}

// Contrasts reports whether fg is legible on bg. The luminance floor keeps the
// ratio finite near black.
func Contrasts(bg, fg RGB) bool {
	lb := bg.luma() + luminanceFloor
	lf := fg.luma() + luminanceFloor
	return math.Max(lb, lf)/math.Min(lb, lf) > minContrast
}

// HSB returns hue in degrees [0, 360) and saturation and brightness in [0, 1].
// Grey colours report a hue of 0.
func (rgb RGB) HSB() (h, s, b float64) {
	return rgb.colorful().Hsv()
}

// WithClampedSaturation caps the saturation at maxSat while keeping hue and
// brightness. Colours already at or below maxSat are returned unchanged.
func (rgb RGB) WithClampedSaturation(maxSat float64) RGB {
	maxSat = math.Max(0, math.Min(1, maxSat))
	h, s, v := rgb.HSB()
	if s <= maxSat {
		return rgb
	}
	return fromColorful(colorful.Hsv(h, maxSat, v))
}

func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: security.SafeUint8(int(math.Round(c.R * 255))),
		G: security.SafeUint8(int(math.Round(c.G * 255))),
		B: security.SafeUint8(int(math.Round(c.B * 255))),
	}
}
