package collide

// Shape is a 2D region that can be tested against the separating-axis
// resolver. All shapes in this package are value types; moving a shape
// means building a new one (see the Translate methods).
type Shape interface {
	// Project returns the shape's shadow on axis: a segment on the axis
	// running from the lowest to the highest parameter covered.
	Project(axis Axis) Segment

	// Contains reports whether p lies inside the shape. Each shape documents
	// whether its boundary counts as inside.
	Contains(p Vector) bool

	// Centroid returns the shape's reference center.
	Centroid() Vector

	// Bounds returns the axis-aligned bounding rectangle.
	Bounds() Rect
}

// Polygonal is implemented by shapes with straight edges.
type Polygonal interface {
	Shape

	// Vertices returns the shape's corners in boundary order.
	// The returned slice is owned by the caller.
	Vertices() []Vector
}

// edgesOf returns the closed edge loop through vertices.
func edgesOf(vertices []Vector) []Segment {
	edges := make([]Segment, len(vertices))
	for i, v := range vertices {
		edges[i] = Segment{Start: v, End: vertices[(i+1)%len(vertices)]}
	}
	return edges
}

// closestOnEdges returns the point on any edge closest to p and the index of
// that edge. The first edge wins exact ties.
func closestOnEdges(edges []Segment, p Vector) (Vector, int) {
	best, bestIdx := Vector{}, -1
	bestDist := 0.0
	for i, e := range edges {
		q := e.ClosestPoint(p)
		d := q.Sub(p).LengthSq()
		if bestIdx < 0 || d < bestDist {
			best, bestIdx, bestDist = q, i, d
		}
	}
	return best, bestIdx
}

// boundsOf returns the bounding rectangle of a point set.
func boundsOf(points []Vector) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Vector{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = Vector{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return Rect{Center: lo.Add(hi).Div(2), HalfExtents: hi.Sub(lo).Div(2)}
}
