package collide

// RegionKind names the feature of a shape nearest to a point.
type RegionKind int

const (
	// RegionInterior means the point is inside the shape.
	RegionInterior RegionKind = iota
	// RegionEdge means the point is outside and nearest to the inside of an edge.
	RegionEdge
	// RegionCorner means the point is outside and nearest to a vertex.
	RegionCorner
)

// String returns the region kind name.
func (k RegionKind) String() string {
	switch k {
	case RegionInterior:
		return "interior"
	case RegionEdge:
		return "edge"
	case RegionCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Region is the Voronoi region of a triangle that a point falls in.
type Region struct {
	Kind RegionKind

	// Index identifies the feature. For RegionInterior it is the centroid
	// sub-triangle (see Triangle.CentroidSubTriangles), for RegionEdge the
	// edge (see Triangle.Edges) and for RegionCorner the vertex (0=A, 1=B, 2=C).
	Index int

	// Closest is the point on the triangle's boundary nearest to the query.
	Closest Vector
}

// outwardNormal returns the left or right perpendicular of edge, whichever
// points away from inner. The result is not normalized.
func outwardNormal(edge Segment, inner Vector) Vector {
	n := edge.Vector().Left()
	if n.Dot(inner.Sub(edge.Start)) > 0 {
		return n.Neg()
	}
	return n
}

// ClassifyTriangle returns the Voronoi region of t containing p.
//
// Outside the triangle the plane splits into three edge regions (points
// whose projection falls inside an edge, on its outward side) and three
// corner wedges bounded by the normals of the two edges meeting at a vertex.
// Inside, the region is the centroid sub-triangle holding p.
func ClassifyTriangle(t Triangle, p Vector) Region {
	edges := t.Edges()

	if t.Contains(p) {
		for i, sub := range t.CentroidSubTriangles() {
			if sub.Contains(p) {
				return Region{Kind: RegionInterior, Index: i, Closest: t.ClosestPoint(p)}
			}
		}
		// Rounding can leave a point on a sub-triangle border unclaimed.
		_, i := closestOnEdges(edges[:], p)
		return Region{Kind: RegionInterior, Index: i, Closest: t.ClosestPoint(p)}
	}

	centroid := t.Centroid()
	for i, e := range edges {
		d := e.Vector()
		rel := p.Sub(e.Start)
		s := rel.Dot(d) / d.LengthSq()
		if s >= 0 && s <= 1 && rel.Dot(outwardNormal(e, centroid)) > 0 {
			return Region{Kind: RegionEdge, Index: i, Closest: e.Start.Add(d.Mul(s))}
		}
	}

	vertices := t.Vertices()
	for k, v := range vertices {
		next := vertices[(k+1)%3]
		prev := vertices[(k+2)%3]
		rel := p.Sub(v)
		if rel.Dot(next.Sub(v)) <= 0 && rel.Dot(prev.Sub(v)) <= 0 {
			return Region{Kind: RegionCorner, Index: k, Closest: v}
		}
	}

	// Unreachable for non-degenerate triangles; fall back to the nearest vertex.
	best := 0
	for k, v := range vertices {
		if v.Sub(p).LengthSq() < vertices[best].Sub(p).LengthSq() {
			best = k
		}
	}
	return Region{Kind: RegionCorner, Index: best, Closest: vertices[best]}
}

// TriangleRegionSet holds drawable outlines of a triangle's exterior
// Voronoi regions, cut off at a finite depth.
type TriangleRegionSet struct {
	// OffsetEdges are the edges translated outward by the depth.
	OffsetEdges [3]Segment

	// Edges are the rectangles between each edge and its offset edge.
	Edges [3]Polygon

	// Corners are the wedges between adjacent edge rectangles, one per
	// vertex in A, B, C order.
	Corners [3]Polygon
}

// TriangleRegions builds the exterior Voronoi regions of t, each reaching
// depth away from the triangle.
func TriangleRegions(t Triangle, depth float64) TriangleRegionSet {
	var set TriangleRegionSet
	edges := t.Edges()
	centroid := t.Centroid()

	for i, e := range edges {
		n, err := outwardNormal(e, centroid).Normalize()
		if err != nil {
			n = Vector{}
		}
		set.OffsetEdges[i] = e.Translate(n.Mul(depth))
		set.Edges[i] = Polygon{vertices: []Vector{
			e.Start, e.End, set.OffsetEdges[i].End, set.OffsetEdges[i].Start,
		}}
	}

	// Vertex k is the end of edge k-1 and the start of edge k.
	vertices := t.Vertices()
	for k, v := range vertices {
		in := (k + 2) % 3
		set.Corners[k] = Polygon{vertices: []Vector{
			v, set.OffsetEdges[in].End, set.OffsetEdges[k].Start,
		}}
	}
	return set
}

// CornerAxis returns the extra candidate axis for a rectangle touching a
// circle near one of its corners.
//
// The axis exists only when the circle's center is outside r, the point of
// r closest to the center is a corner, and the corner-to-center line is
// neither vertical nor horizontal (those directions are already covered by
// the rectangle's own axes). The axis runs parallel to the corner-to-center
// line, directed toward the circle, shifted sideways so it passes through
// neither shape.
func CornerAxis(r Rect, c Circle, opts ...Option) (Axis, bool) {
	if r.Contains(c.Center) {
		return Axis{}, false
	}
	corner := r.ClosestCorner(c.Center)
	if !r.ClosestPoint(c.Center).Equal(corner) {
		return Axis{}, false
	}
	line := Seg(corner, c.Center)
	if line.IsVertical() || line.IsHorizontal() {
		return Axis{}, false
	}
	o := buildOptions(opts)
	return vertexAxis(corner, c, r.Size().Length(), o.diagonalMargin)
}

// VertexAxis generalizes CornerAxis to any polygonal shape: when the
// circle's center is outside s and nearest to one of its vertices, it
// returns the axis from that vertex toward the center. Axis-aligned results
// are returned too; callers that already test those directions should
// skip them.
func VertexAxis(s Polygonal, c Circle, opts ...Option) (Axis, bool) {
	if s.Contains(c.Center) {
		return Axis{}, false
	}
	vertices := s.Vertices()
	closest, _ := closestOnEdges(edgesOf(vertices), c.Center)

	for _, v := range vertices {
		if !closest.Equal(v) {
			continue
		}
		reach := 0.0
		for _, w := range vertices {
			reach = max(reach, w.Distance(v))
		}
		o := buildOptions(opts)
		return vertexAxis(v, c, reach, o.diagonalMargin)
	}
	return Axis{}, false
}

// vertexAxis builds the axis through vertex toward c's center, shifted
// toward the top of the screen by the circle radius plus reach plus margin.
func vertexAxis(vertex Vector, c Circle, reach, margin float64) (Axis, bool) {
	u, err := c.Center.Sub(vertex).Normalize()
	if err != nil {
		return Axis{}, false
	}
	side := u.Left()
	if side.Y >= 0 {
		side = u.Right()
	}
	origin := vertex.Add(side.Mul(c.Radius + reach + margin))
	return Axis{Origin: origin, Direction: u}, true
}
