package imgbatch

import (
	"image"
	"testing"
)

func TestTargetSize(t *testing.T) {
	testCase := []struct {
		option ResizeOption
		orig   image.Point
		want   image.Point
	}{
		// percent wins over width and height
		{ResizeOption{Percent: 50, KeepAspect: true}, image.Pt(200, 100), image.Pt(100, 50)},
		{ResizeOption{Percent: 50, Width: 999, Height: 999, KeepAspect: true}, image.Pt(200, 100), image.Pt(100, 50)},
		{ResizeOption{Percent: 10}, image.Pt(64, 48), image.Pt(6, 4)},
		// fit within box
		{ResizeOption{Width: 100, Height: 100, KeepAspect: true}, image.Pt(400, 200), image.Pt(100, 50)},
		{ResizeOption{Width: 100, Height: 100, KeepAspect: true}, image.Pt(200, 400), image.Pt(50, 100)},
		{ResizeOption{Width: 1080, Height: 1080, KeepAspect: true}, image.Pt(1080, 1080), image.Pt(1080, 1080)},
		// exact size, may distort
		{ResizeOption{Width: 100, Height: 100}, image.Pt(400, 200), image.Pt(100, 100)},
		// single dimension
		{ResizeOption{Width: 150, KeepAspect: true}, image.Pt(300, 150), image.Pt(150, 75)},
		{ResizeOption{Width: 150}, image.Pt(300, 150), image.Pt(150, 75)},
		{ResizeOption{Height: 75, KeepAspect: true}, image.Pt(300, 150), image.Pt(150, 75)},
		// nothing set
		{ResizeOption{KeepAspect: true}, image.Pt(123, 45), image.Pt(123, 45)},
		{ResizeOption{}, image.Pt(123, 45), image.Pt(123, 45)},
		// degenerate values pass through the arithmetic unvalidated
		{ResizeOption{Width: -50, Height: -50}, image.Pt(100, 100), image.Pt(-50, -50)},
		{ResizeOption{Percent: 1}, image.Pt(50, 50), image.Pt(0, 0)},
	}

	for _, tc := range testCase {
		w, h := tc.option.TargetSize(tc.orig.X, tc.orig.Y)
		if w != tc.want.X || h != tc.want.Y {
			t.Errorf("%+v of %v: want %v, got (%d,%d)", tc.option, tc.orig, tc.want, w, h)
		}
	}
}

func TestResize(t *testing.T) {
	sample := image.NewNRGBA(image.Rect(0, 0, 400, 200))

	testCase := []struct {
		option *ResizeOption
		want   image.Point
	}{
		{&ResizeOption{Width: 100, Height: 100, KeepAspect: true}, image.Pt(100, 50)},
		{&ResizeOption{Width: 100, Height: 100}, image.Pt(100, 100)},
		{&ResizeOption{Percent: 50}, image.Pt(200, 100)},
		{&ResizeOption{}, image.Pt(400, 200)},
	}

	for _, tc := range testCase {
		img := Resize(sample, tc.option)
		if img.Bounds().Size() != tc.want {
			t.Errorf("%+v: bounds differ: %v and %v", tc.option, img.Bounds().Size(), tc.want)
		}
	}
}
