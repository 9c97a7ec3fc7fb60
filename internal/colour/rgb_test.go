package colour

import (
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestRGBPredicates(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		dark  bool
		black bool
		white bool
	}{
		{name: "black", rgb: RGB{0, 0, 0}, dark: true, black: true},
		{name: "white", rgb: RGB{255, 255, 255}, white: true},
		{name: "black edge", rgb: RGB{22, 22, 22}, dark: true, black: true},
		{name: "not black", rgb: RGB{23, 0, 0}, dark: true},
		{name: "white edge", rgb: RGB{233, 233, 233}, white: true},
		{name: "not white", rgb: RGB{232, 255, 255}},
		{name: "mid grey light", rgb: RGB{128, 128, 128}},
		{name: "mid grey dark", rgb: RGB{127, 127, 127}, dark: true},
		{name: "pure blue", rgb: RGB{0, 0, 255}, dark: true},
		{name: "yellow", rgb: RGB{255, 246, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.IsDark(); got != tt.dark {
				t.Errorf("IsDark() = %v, want %v", got, tt.dark)
			}
			if got := tt.rgb.IsBlack(); got != tt.black {
				t.Errorf("IsBlack() = %v, want %v", got, tt.black)
			}
			if got := tt.rgb.IsWhite(); got != tt.white {
				t.Errorf("IsWhite() = %v, want %v", got, tt.white)
			}
			if got := tt.rgb.IsBlackOrWhite(); got != (tt.black || tt.white) {
				t.Errorf("IsBlackOrWhite() = %v, want %v", got, tt.black || tt.white)
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	red := RGB{255, 0, 0}
	tests := []struct {
		name string
		a, b RGB
		want bool
	}{
		{name: "near red", a: red, b: RGB{250, 0, 0}, want: false},
		{name: "red yellow", a: red, b: RGB{255, 255, 0}, want: true},
		{name: "red magenta", a: red, b: RGB{255, 0, 255}, want: true},
		{name: "exactly threshold", a: RGB{0, 0, 0}, b: RGB{0, 0, 64}, want: true},
		{name: "under threshold", a: RGB{0, 0, 0}, b: RGB{0, 0, 63}, want: false},
		{name: "two greys", a: RGB{40, 40, 40}, b: RGB{200, 200, 200}, want: false},
		{name: "grey and colour", a: RGB{100, 100, 100}, b: RGB{200, 50, 50}, want: true},
		{name: "green blue spread is not grey", a: RGB{100, 93, 107}, b: RGB{200, 200, 200}, want: true},
		{name: "black and white", a: Black, b: White, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distinct(tt.a, tt.b); got != tt.want {
				t.Errorf("Distinct(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Distinct(tt.b, tt.a); got != tt.want {
				t.Errorf("Distinct(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestContrasts(t *testing.T) {
	tests := []struct {
		name   string
		bg, fg RGB
		want   bool
	}{
		{name: "black on white", bg: White, fg: Black, want: true},
		{name: "white on black", bg: Black, fg: White, want: true},
		{name: "similar greys", bg: RGB{100, 100, 100}, fg: RGB{110, 110, 110}, want: false},
		{name: "same colour", bg: RGB{10, 200, 30}, fg: RGB{10, 200, 30}, want: false},
		{name: "pink on yellow", bg: RGB{255, 246, 1}, fg: RGB{198, 103, 143}, want: true},
		{name: "purple on yellow", bg: RGB{255, 246, 1}, fg: RGB{160, 14, 240}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrasts(tt.bg, tt.fg); got != tt.want {
				t.Errorf("Contrasts(%v, %v) = %v, want %v", tt.bg, tt.fg, got, tt.want)
			}
		})
	}
}

func TestHSB(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		h, s, b float64
	}{
		{name: "red", rgb: RGB{255, 0, 0}, h: 0, s: 100, b: 100},
		{name: "lavender", rgb: RGB{128, 128, 255}, h: 240, s: 50, b: 100},
		{name: "baltic blue", rgb: RGB{37, 77, 120}, h: 211, s: 69, b: 47},
		{name: "grey", rgb: RGB{90, 90, 90}, h: 0, s: 0, b: 35},
		{name: "black", rgb: Black, h: 0, s: 0, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, b := tt.rgb.HSB()
			if h < 0 || h >= 360 {
				t.Errorf("hue %v out of [0, 360)", h)
			}
			if math.Round(h) != tt.h || math.Round(s*100) != tt.s || math.Round(b*100) != tt.b {
				t.Errorf("HSB() = (%.0f, %.0f, %.0f), want (%v, %v, %v)",
					h, s*100, b*100, tt.h, tt.s, tt.b)
			}
		})
	}
}

func TestWithClampedSaturation(t *testing.T) {
	tests := []struct {
		name   string
		rgb    RGB
		maxSat float64
		want   RGB
	}{
		{name: "red to grey", rgb: RGB{255, 0, 0}, maxSat: 0, want: RGB{255, 255, 255}},
		{name: "red half", rgb: RGB{255, 0, 0}, maxSat: 0.5, want: RGB{255, 128, 128}},
		{name: "cyan half", rgb: RGB{0, 255, 255}, maxSat: 0.5, want: RGB{128, 255, 255}},
		{name: "dark red low cap rounds to nearest", rgb: RGB{205, 0, 0}, maxSat: 0.15, want: RGB{205, 174, 174}},
		{name: "already muted", rgb: RGB{200, 180, 170}, maxSat: 0.5, want: RGB{200, 180, 170}},
		{name: "grey unchanged", rgb: RGB{90, 90, 90}, maxSat: 0, want: RGB{90, 90, 90}},
		{name: "full cap unchanged", rgb: RGB{160, 14, 240}, maxSat: 1, want: RGB{160, 14, 240}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.WithClampedSaturation(tt.maxSat); got != tt.want {
				t.Errorf("WithClampedSaturation(%v) = %v, want %v", tt.maxSat, got, tt.want)
			}
		})
	}
}

func TestWithClampedSaturationIdempotent(t *testing.T) {
	caps := []float64{0, 0.15, 0.3, 0.5, 0.75, 1}
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				hi := max(c.R, c.G, c.B)
				for _, maxSat := range caps {
					once := c.WithClampedSaturation(maxSat)
					twice := once.WithClampedSaturation(maxSat)
					if once != twice {
						t.Fatalf("%v cap %v: once %v, twice %v", c, maxSat, once, twice)
					}
					if got := max(once.R, once.G, once.B); got != hi {
						t.Fatalf("%v cap %v: brightness changed to %v", c, maxSat, once)
					}
				}
			}
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#fff601", want: RGB{255, 246, 1}},
		{in: "A00EF0", want: RGB{160, 14, 240}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.Hex() != "#"+strings.ToLower(strings.TrimPrefix(tt.in, "#")) {
				t.Errorf("Hex() = %s, want round trip of %s", got.Hex(), tt.in)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{name: "opaque", color: color.RGBA{R: 255, G: 0, B: 0, A: 255}, want: RGB{255, 0, 0}},
		{name: "nrgba", color: color.NRGBA{R: 10, G: 20, B: 30, A: 255}, want: RGB{10, 20, 30}},
		{name: "self", color: RGB{1, 2, 3}, want: RGB{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.color); got != tt.want {
				t.Errorf("ToRGB() = %v, want %v", got, tt.want)
			}
		})
	}
}
