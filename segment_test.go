package collide

import (
	"errors"
	"math"
	"testing"
)

func TestSegment_ClosestPoint(t *testing.T) {
	s := Seg(V(0, 0), V(10, 0))
	tests := []struct {
		name   string
		p      Vector
		expect Vector
	}{
		{"above middle", V(5, 5), V(5, 0)},
		{"before start", V(-3, 2), V(0, 0)},
		{"past end", V(14, -1), V(10, 0)},
		{"on segment", V(7, 0), V(7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ClosestPoint(tt.p)
			if !got.Approx(tt.expect, 1e-9) {
				t.Errorf("ClosestPoint(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}

	point := Seg(V(2, 2), V(2, 2))
	if got := point.ClosestPoint(V(9, 9)); got != V(2, 2) {
		t.Errorf("zero-length ClosestPoint = %v, want (2, 2)", got)
	}
}

func TestSegment_ClosestPointOnSegmentIsIdentity(t *testing.T) {
	segments := []Segment{
		Seg(V(0, 0), V(10, 0)),
		Seg(V(-3, 7), V(12, -4)),
		Seg(V(100, 100), V(100, 300)),
		Seg(V(0.1, 0.2), V(0.3, 0.7)),
	}
	for _, s := range segments {
		for i := 0; i <= 10; i++ {
			p := s.Start.Lerp(s.End, float64(i)/10)
			if got := s.ClosestPoint(p); !got.Approx(p, 1e-9) {
				t.Errorf("%v.ClosestPoint(%v) = %v, want the point itself", s, p, got)
			}
		}
	}
}

func TestSegment_Extend(t *testing.T) {
	s := Seg(V(0, 0), V(10, 0))

	got, err := s.Extend(5)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if !got.Start.Approx(V(-5, 0), 1e-10) || !got.End.Approx(V(15, 0), 1e-10) {
		t.Errorf("Extend(5) = %v, want (-5,0)-(15,0)", got)
	}

	got, err = s.ExtendEach(1, 3)
	if err != nil {
		t.Fatalf("ExtendEach: %v", err)
	}
	if !got.Start.Approx(V(-1, 0), 1e-10) || !got.End.Approx(V(13, 0), 1e-10) {
		t.Errorf("ExtendEach(1, 3) = %v, want (-1,0)-(13,0)", got)
	}

	if _, err := Seg(V(1, 1), V(1, 1)).Extend(2); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("Extend on zero-length segment: error = %v, want ErrDegenerateSegment", err)
	}
}

func TestSegment_Accessors(t *testing.T) {
	s := Seg(V(1, 2), V(4, 6))
	if got := s.Vector(); got != V(3, 4) {
		t.Errorf("Vector = %v, want (3, 4)", got)
	}
	if got := s.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := s.Center(); got != V(2.5, 4) {
		t.Errorf("Center = %v, want (2.5, 4)", got)
	}
	if got := s.Reverse(); got.Start != s.End || got.End != s.Start {
		t.Errorf("Reverse = %v", got)
	}
	if got := s.Translate(V(1, 1)); got != Seg(V(2, 3), V(5, 7)) {
		t.Errorf("Translate = %v", got)
	}
}

func TestSegment_Orientation(t *testing.T) {
	tests := []struct {
		name       string
		s          Segment
		vertical   bool
		horizontal bool
	}{
		{"horizontal", Seg(V(0, 5), V(10, 5)), false, true},
		{"vertical", Seg(V(3, 0), V(3, 10)), true, false},
		{"nearly vertical", Seg(V(3, 0), V(3.0004, 10)), true, false},
		{"diagonal", Seg(V(0, 0), V(5, 5)), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsVertical(); got != tt.vertical {
				t.Errorf("IsVertical = %v, want %v", got, tt.vertical)
			}
			if got := tt.s.IsHorizontal(); got != tt.horizontal {
				t.Errorf("IsHorizontal = %v, want %v", got, tt.horizontal)
			}
		})
	}
}

func TestSegment_Side(t *testing.T) {
	s := Seg(V(0, 0), V(10, 0))
	tests := []struct {
		p      Vector
		expect Orientation
	}{
		{V(5, 1), LeftSide},
		{V(5, -1), RightSide},
		{V(20, 0), OnLine},
		{V(5, 0.00001), OnLine},
	}
	for _, tt := range tests {
		if got := s.Side(tt.p); got != tt.expect {
			t.Errorf("Side(%v) = %v, want %v", tt.p, got, tt.expect)
		}
	}
}

// sameEndpoints reports whether two segments have the same endpoints in
// either order.
func sameEndpoints(a, b Segment) bool {
	return (a.Start.Approx(b.Start, 1e-9) && a.End.Approx(b.End, 1e-9)) ||
		(a.Start.Approx(b.End, 1e-9) && a.End.Approx(b.Start, 1e-9))
}

func TestSegment_Overlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		ok     bool
		expect Segment
	}{
		{
			name: "partial",
			a:    Seg(V(0, 0), V(10, 0)), b: Seg(V(5, 0), V(15, 0)),
			ok: true, expect: Seg(V(5, 0), V(10, 0)),
		},
		{
			name: "disjoint collinear",
			a:    Seg(V(0, 0), V(5, 0)), b: Seg(V(10, 0), V(15, 0)),
			ok: false,
		},
		{
			name: "contained",
			a:    Seg(V(0, 0), V(20, 0)), b: Seg(V(5, 0), V(8, 0)),
			ok: true, expect: Seg(V(5, 0), V(8, 0)),
		},
		{
			name: "identical",
			a:    Seg(V(0, 0), V(10, 10)), b: Seg(V(0, 0), V(10, 10)),
			ok: true, expect: Seg(V(0, 0), V(10, 10)),
		},
		{
			name: "opposite directions",
			a:    Seg(V(0, 0), V(10, 0)), b: Seg(V(15, 0), V(5, 0)),
			ok: true, expect: Seg(V(5, 0), V(10, 0)),
		},
		{
			name: "touching",
			a:    Seg(V(0, 0), V(5, 0)), b: Seg(V(5, 0), V(9, 0)),
			ok: true, expect: Seg(V(5, 0), V(5, 0)),
		},
		{
			name: "not parallel",
			a:    Seg(V(0, 0), V(10, 0)), b: Seg(V(5, -5), V(5, 5)),
			ok: false,
		},
		{
			name: "parallel but offset",
			a:    Seg(V(0, 0), V(10, 0)), b: Seg(V(0, 1), V(10, 1)),
			ok: false,
		},
		{
			name: "diagonal partial",
			a:    Seg(V(0, 0), V(10, 10)), b: Seg(V(5, 5), V(20, 20)),
			ok: true, expect: Seg(V(5, 5), V(10, 10)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, okAB := tt.a.Overlap(tt.b)
			ba, okBA := tt.b.Overlap(tt.a)
			if okAB != tt.ok || okBA != tt.ok {
				t.Fatalf("Overlap ok = %v / %v (reversed), want %v", okAB, okBA, tt.ok)
			}
			if !tt.ok {
				return
			}
			if !sameEndpoints(ab, tt.expect) {
				t.Errorf("a.Overlap(b) = %v, want %v", ab, tt.expect)
			}
			if !sameEndpoints(ab, ba) {
				t.Errorf("Overlap is not symmetric: %v vs %v", ab, ba)
			}
		})
	}
}

func TestSegment_OverlapReturnsContainedUnchanged(t *testing.T) {
	outer := Seg(V(0, 0), V(20, 0))
	inner := Seg(V(8, 0), V(5, 0))
	got, ok := outer.Overlap(inner)
	if !ok || got != inner {
		t.Errorf("Overlap = %v, %v; want the contained segment %v unchanged", got, ok, inner)
	}
}

func TestSegment_OverlapTolerance(t *testing.T) {
	a := Seg(V(0, 0), V(10, 0))
	// Endpoint within Epsilon of a, direction within the cross tolerance.
	b := Seg(V(10.0005, 0), V(20, 0))
	got, ok := a.Overlap(b)
	if !ok {
		t.Fatal("segments within Epsilon should overlap")
	}
	if math.Abs(got.Length()) > 0.001 {
		t.Errorf("touching overlap length = %v, want ~0", got.Length())
	}
}
