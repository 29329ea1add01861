package collide

import "math"

// Orientation describes on which side of a directed segment a point lies.
type Orientation int

const (
	// OnLine means the point is collinear with the segment within Epsilon.
	OnLine Orientation = iota
	// LeftSide means a positive cross product (dir × (p - start)).
	LeftSide
	// RightSide means a negative cross product.
	RightSide
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OnLine:
		return "on-line"
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return "unknown"
	}
}

// Segment is a directed line segment from Start to End.
type Segment struct {
	Start, End Vector
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Vector) Segment {
	return Segment{Start: start, End: end}
}

// Vector returns End - Start.
func (s Segment) Vector() Vector {
	return s.End.Sub(s.Start)
}

// Center returns the midpoint of the segment.
func (s Segment) Center() Vector {
	return s.Start.Add(s.End).Div(2)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// LengthSq returns the squared length of the segment.
func (s Segment) LengthSq() float64 {
	return s.Vector().LengthSq()
}

// IsDegenerate reports whether Start and End coincide exactly.
func (s Segment) IsDegenerate() bool {
	return s.Vector().IsZero()
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Translate returns the segment moved by d.
func (s Segment) Translate(d Vector) Segment {
	return Segment{Start: s.Start.Add(d), End: s.End.Add(d)}
}

// Transform returns the segment with both endpoints transformed by m.
func (s Segment) Transform(m Matrix) Segment {
	return Segment{Start: m.Apply(s.Start), End: m.Apply(s.End)}
}

// ClosestPoint returns the point on the segment closest to p.
//
// p is projected onto the infinite line through the segment and the
// projection parameter is clamped to [0, 1]. A zero-length segment
// returns Start.
func (s Segment) ClosestPoint(p Vector) Vector {
	d := s.Vector()
	lsq := d.LengthSq()
	if lsq == 0 {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(d) / lsq
	switch {
	case t <= 0:
		return s.Start
	case t >= 1:
		return s.End
	}
	return s.Start.Add(d.Mul(t))
}

// DistanceSq returns the squared distance from p to the segment.
func (s Segment) DistanceSq(p Vector) float64 {
	return s.ClosestPoint(p).Sub(p).LengthSq()
}

// Contains reports whether p lies on the segment within Epsilon.
func (s Segment) Contains(p Vector) bool {
	return s.DistanceSq(p) <= epsilonSq
}

// Extend returns the segment with both endpoints pushed outward by d
// along its direction.
func (s Segment) Extend(d float64) (Segment, error) {
	return s.ExtendEach(d, d)
}

// ExtendEach pushes Start back by d0 and End forward by d1 along the
// segment's direction. Negative distances shorten the segment.
// It returns ErrDegenerateSegment for a zero-length segment.
func (s Segment) ExtendEach(d0, d1 float64) (Segment, error) {
	dir, err := s.Vector().Normalize()
	if err != nil {
		return Segment{}, ErrDegenerateSegment
	}
	return Segment{
		Start: s.Start.Sub(dir.Mul(d0)),
		End:   s.End.Add(dir.Mul(d1)),
	}, nil
}

// IsVertical reports whether the endpoints share an x coordinate within Epsilon.
func (s Segment) IsVertical() bool {
	return nearlyEqual(s.Start.X, s.End.X)
}

// IsHorizontal reports whether the endpoints share a y coordinate within Epsilon.
func (s Segment) IsHorizontal() bool {
	return nearlyEqual(s.Start.Y, s.End.Y)
}

// Side reports on which side of the directed segment p lies.
func (s Segment) Side(p Vector) Orientation {
	c := s.Vector().Cross(p.Sub(s.Start))
	switch {
	case nearlyZero(c):
		return OnLine
	case c > 0:
		return LeftSide
	default:
		return RightSide
	}
}

// IsCollinear reports whether the directions of s and other are parallel,
// i.e. |cross| <= Epsilon. It does not check that the lines coincide.
func (s Segment) IsCollinear(other Segment) bool {
	return math.Abs(s.Vector().Cross(other.Vector())) <= Epsilon
}

// Overlap returns the part shared by two collinear segments.
//
// The segments must be parallel (see IsCollinear) and each endpoint is
// tested for lying on the other segment with tolerance Epsilon. When both
// endpoints of one segment lie on the other, that contained segment is
// returned unchanged, s being checked before other. Otherwise the overlap
// runs from the endpoint of s lying on other to the endpoint of other
// lying on s. Segments that only touch yield a zero-length overlap.
//
// The result is symmetric as a set: s.Overlap(o) and o.Overlap(s) have the
// same endpoints, possibly in reverse order.
func (s Segment) Overlap(other Segment) (Segment, bool) {
	if !s.IsCollinear(other) {
		return Segment{}, false
	}

	startOnOther := other.Contains(s.Start)
	endOnOther := other.Contains(s.End)
	if startOnOther && endOnOther {
		return s, true
	}

	otherStartOnS := s.Contains(other.Start)
	otherEndOnS := s.Contains(other.End)
	if otherStartOnS && otherEndOnS {
		return other, true
	}

	if !startOnOther && !endOnOther && !otherStartOnS && !otherEndOnS {
		return Segment{}, false
	}

	p0 := s.End
	if startOnOther {
		p0 = s.Start
	}
	p1 := other.End
	if otherStartOnS {
		p1 = other.Start
	}
	return Segment{Start: p0, End: p1}, true
}
