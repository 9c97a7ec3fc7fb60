package image

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ResizeCode identifies why a resample failed.
type ResizeCode int

const (
	// ResizeInvalidSize means the requested output size has a zero or
	// negative dimension.
	ResizeInvalidSize ResizeCode = -21773
	// ResizeEmptySource means the source image has no pixels.
	ResizeEmptySource ResizeCode = -21766
	// ResizeUnsupportedFormat means the source could not be read as an image.
	ResizeUnsupportedFormat ResizeCode = -21778
)

// String returns a short description of the code.
func (c ResizeCode) String() string {
	switch c {
	case ResizeInvalidSize:
		return "invalid size"
	case ResizeEmptySource:
		return "empty source"
	case ResizeUnsupportedFormat:
		return "unsupported format"
	default:
		return fmt.Sprintf("resize error %d", int(c))
	}
}

// ResizeError is returned when an image cannot be normalised to the
// requested size.
type ResizeError struct {
	Code ResizeCode
	Size image.Point
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("failed to resize image to %dx%d: %s (code %d)", e.Size.X, e.Size.Y, e.Code, int(e.Code))
}

// Resampler converts a decoded image to a non-premultiplied RGBA buffer of
// exactly the requested size.
type Resampler interface {
	Resample(src image.Image, size image.Point) (*image.NRGBA, error)
}

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationCatmullRom gives high quality for both up and down scaling.
	InterpolationCatmullRom Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationApproxLinear is a faster, lower quality bilinear.
	InterpolationApproxLinear
)

// ScaleResampler resamples with a golang.org/x/image/draw scaler.
type ScaleResampler struct {
	scaler draw.Scaler
}

// NewResampler returns a Catmull-Rom resampler.
func NewResampler() *ScaleResampler {
	return NewResamplerWithInterpolation(InterpolationCatmullRom)
}

// NewResamplerWithInterpolation returns a resampler using interp. Unknown
// values fall back to Catmull-Rom.
func NewResamplerWithInterpolation(interp Interpolation) *ScaleResampler {
	var scaler draw.Scaler
	switch interp {
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationApproxLinear:
		scaler = draw.ApproxBiLinear
	default:
		scaler = draw.CatmullRom
	}
	return &ScaleResampler{scaler: scaler}
}

// Resample returns src converted to NRGBA and scaled to size. When size
// matches the source only the pixel format is converted.
func (r *ScaleResampler) Resample(src image.Image, size image.Point) (*image.NRGBA, error) {
	if src == nil {
		return nil, &ResizeError{Code: ResizeUnsupportedFormat, Size: size}
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, &ResizeError{Code: ResizeEmptySource, Size: size}
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, &ResizeError{Code: ResizeInvalidSize, Size: size}
	}

	if size == bounds.Size() {
		return toNRGBA(src), nil
	}

	dst := image.NewNRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst, nil
}

// toNRGBA copies img into a zero-origin NRGBA buffer.
func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Copy rows directly so partially transparent pixels are not
	// round-tripped through premultiplied alpha.
	if src, ok := img.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			srcOff := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[srcOff:srcOff+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
