package fract

import "image"
import "testing"

func TestBoundingRect(t *testing.T) {
	rect := BoundingRect(IntsToPoint(3, 1), IntsToPoint(-2, 4), IntsToPoint(0, 0))
	if rect != UnitsToRect(FromInt(-2), 0, FromInt(3), FromInt(4)) {
		t.Fatalf("unexpected bounding rect %v", rect)
	}
	if rect.Width() != FromInt(5) || rect.Height() != FromInt(4) {
		t.Fatalf("unexpected size %d x %d", rect.Width(), rect.Height())
	}
	rect = rect.Extend(IntsToPoint(10, -1))
	if rect != UnitsToRect(FromInt(-2), FromInt(-1), FromInt(10), FromInt(4)) {
		t.Fatalf("unexpected extended rect %v", rect)
	}
	if rect.Empty() { t.Fatal("expected non-empty rect") }
	if !UnitsToRect(0, 0, 0, One).Empty() { t.Fatal("expected empty rect") }
}

func TestRectCorners(t *testing.T) {
	rect := UnitsToRect(0, 0, FromInt(4), FromInt(2))
	tests := []struct {
		in  Point
		out bool
	}{
		{IntsToPoint(0, 0), true}, {IntsToPoint(4, 0), true},
		{IntsToPoint(0, 2), true}, {IntsToPoint(4, 2), true},
		{IntsToPoint(2, 0), false}, {IntsToPoint(0, 1), false},
		{UnitsToPoint(1, 0), false}, {IntsToPoint(4, 3), false},
	}
	for i, test := range tests {
		if rect.IsCorner(test.in) != test.out {
			t.Fatalf("test #%d: IsCorner(%s) expected %t", i, test.in, test.out)
		}
	}
}

func TestRectPixels(t *testing.T) {
	tests := []struct {
		in       Rect
		image    image.Rectangle
		coverage image.Rectangle
	}{
		{
			UnitsToRect(0, 0, FromInt(4), FromInt(2)),
			image.Rect(0, 0, 4, 2), image.Rect(0, 0, 4, 2),
		},
		{
			UnitsToRect(Half, Half, FromInt(3) + Half, FromInt(2) + Half),
			image.Rect(0, 0, 4, 3), image.Rect(0, 0, 3, 2),
		},
		{
			UnitsToRect(Half + 1, 1, FromInt(2) + Half + 1, FromInt(1) + 1),
			image.Rect(0, 0, 3, 2), image.Rect(1, 0, 3, 1),
		},
	}
	for i, test := range tests {
		if test.in.ImageRect() != test.image {
			t.Fatalf("test #%d: expected image rect %v, got %v", i, test.image, test.in.ImageRect())
		}
		if test.in.PixelCoverage() != test.coverage {
			t.Fatalf("test #%d: expected coverage %v, got %v", i, test.coverage, test.in.PixelCoverage())
		}
	}
}
