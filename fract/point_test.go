package fract

import "testing"

func TestPoint(t *testing.T) {
	point := UnitsToPoint(One, Half - 1)
	imgPt := point.ImagePoint()
	if imgPt.X != 1 || imgPt.Y != 0 {
		t.Fatalf("expected (X: 1, Y: 0), got %v", imgPt)
	}
	point = point.Add(UnitsToPoint(0, 1))
	if point.String() != "(1, 0.5)" {
		t.Fatalf("expected (1, 0.5), got %s", point.String())
	}
	point = point.Add(point)
	if point.String() != "(2, 1)" {
		t.Fatalf("expected (2, 1), got %s", point.String())
	}
	point = point.Sub(IntsToPoint(1, 1))
	x, y := point.ToFloat64s()
	if x != 1 || y != 0 {
		t.Fatalf("expected (1, 0), got (%f, %f)", x, y)
	}

	fp := Float32sToPoint(2.5, -4)
	if fp.String() != "(2.5, -4)" { t.Fatalf("expected (2.5, -4), got %s", fp) }

	point = IntsToPoint(2, 1)
	if !point.In(UnitsToRect(2*One, One, 2*One + 1, One + 1)) {
		t.Fatalf("point.In(rect) #1: expected inside, got outside")
	}
	if point.In(UnitsToRect(2*One, One, 2*One + 1, One)) {
		t.Fatalf("point.In(rect) #2: expected outside, got inside")
	}
	if point.In(UnitsToRect(0, 0, One, One)) {
		t.Fatalf("point.In(rect) #3: expected outside, got inside")
	}
}
