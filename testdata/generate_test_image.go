//go:build ignore

// Test image generator for creating a sample cover used when trying the CLI.
// Run with: go run testdata/generate_test_image.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	width := 400
	height := 400
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Horizontal bands: 60% yellow, 25% pink, 14% purple and a transparent
	// bottom strip that the histogram ignores.
	bands := []struct {
		c      color.NRGBA
		height int
	}{
		{color.NRGBA{R: 255, G: 246, B: 1, A: 255}, 240},
		{color.NRGBA{R: 198, G: 103, B: 143, A: 255}, 100},
		{color.NRGBA{R: 160, G: 14, B: 240, A: 255}, 56},
		{color.NRGBA{R: 0, G: 200, B: 0, A: 20}, 4},
	}

	y := 0
	for _, b := range bands {
		for end := y + b.height; y < end; y++ {
			for x := 0; x < width; x++ {
				img.SetNRGBA(x, y, b.c)
			}
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}
}
