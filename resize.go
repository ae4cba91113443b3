package imgbatch

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeOption controls how target dimensions are derived from the original
// ones. Percent takes precedence over Width and Height. With both Width and
// Height set and KeepAspect enabled, the image is scaled to fit inside the
// Width×Height box without exceeding either bound. With only one of Width or
// Height set, the other dimension follows the aspect ratio. A zero-value
// option leaves the size unchanged.
//
// Requested values are not validated; zero or negative sizes run through the
// same arithmetic and may yield an empty image.
type ResizeOption struct {
	Width      int
	Height     int
	Percent    float64
	KeepAspect bool
}

// TargetSize computes the output dimensions for an image of the given size.
// Ratios are computed in floating point and the results truncated toward
// zero, so callers can rely on exact pixel counts.
func (r *ResizeOption) TargetSize(w, h int) (int, int) {
	switch {
	case r.Percent != 0:
		return int(float64(w) * r.Percent / 100), int(float64(h) * r.Percent / 100)
	case r.Width != 0 && r.Height != 0:
		if !r.KeepAspect {
			return r.Width, r.Height
		}
		ratio := math.Min(float64(r.Width)/float64(w), float64(r.Height)/float64(h))
		return int(float64(w) * ratio), int(float64(h) * ratio)
	case r.Width != 0:
		return r.Width, int(float64(h) * float64(r.Width) / float64(w))
	case r.Height != 0:
		return int(float64(w) * float64(r.Height) / float64(h)), r.Height
	}
	return w, h
}

func (r *ResizeOption) do(base image.Image) image.Image {
	w, h := r.TargetSize(base.Bounds().Dx(), base.Bounds().Dy())
	return imaging.Resize(base, w, h, imaging.Lanczos)
}

// Resize resizes an image according option.
func Resize(base image.Image, option *ResizeOption) image.Image {
	return option.do(base)
}
