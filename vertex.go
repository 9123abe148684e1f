package traverse

import "fmt"

// === Vertex ================================================================

// Vertex is one station of a polyline. Turn is the signed sweep angle
// (radians, counter-clockwise positive) of the circular arc that starts at
// this vertex and ends at the next vertex of the same polyline. Turn = 0
// means the outgoing segment is a straight line. A vertex without a
// successor always has Turn = 0.
type Vertex struct {
	X, Y float64
	Turn float64
}

// V is a quick notation for constructing a vertex from coordinates.
func V(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// P returns the location of v as a pair.
func (v Vertex) P() Pair {
	return P(v.X, v.Y)
}

// Pretty Stringer for vertices.
func (v Vertex) String() string {
	if Is0(v.Turn) {
		return fmt.Sprintf("(%g,%g)", v.X, v.Y)
	}
	return fmt.Sprintf("(%g,%g)~%g", v.X, v.Y, v.Turn)
}

// === Polyline ==============================================================

// Polyline is an ordered sequence of vertices, non-empty once created.
// Every vertex carries a tag, the identifier of the input line which
// produced it. Tags are opaque and used for reporting only.
type Polyline struct {
	vertices []Vertex
	tags     []string
}

// NewPolyline creates a polyline with a single start vertex. The start
// vertex records a location, not a course: its turn is cleared.
func NewPolyline(start Vertex, tag string) *Polyline {
	start.Turn = 0
	pl := &Polyline{}
	pl.vertices = append(pl.vertices, start)
	pl.tags = append(pl.tags, tag)
	return pl
}

// N returns the number of vertices.
func (pl *Polyline) N() int {
	return len(pl.vertices)
}

// Z returns the vertex at position i.
func (pl *Polyline) Z(i int) Vertex {
	return pl.vertices[i]
}

// Tag returns the report tag of the vertex at position i.
func (pl *Polyline) Tag(i int) string {
	return pl.tags[i]
}

// Last returns the most recently appended vertex.
func (pl *Polyline) Last() Vertex {
	return pl.vertices[len(pl.vertices)-1]
}

// Append adds a vertex at the end of the polyline.
func (pl *Polyline) Append(v Vertex, tag string) {
	pl.vertices = append(pl.vertices, v)
	pl.tags = append(pl.tags, tag)
}

// SetTurn sets the arc sweep at vertex i. Only vertices with a successor
// may carry a non-zero turn.
func (pl *Polyline) SetTurn(i int, a float64) {
	pl.vertices[i].Turn = a
}

// Drop removes the last vertex and returns the remaining vertex count.
// The new last vertex, if any, loses its successor and therefore its turn.
func (pl *Polyline) Drop() int {
	n := len(pl.vertices) - 1
	pl.vertices = pl.vertices[:n]
	pl.tags = pl.tags[:n]
	if n > 0 {
		pl.vertices[n-1].Turn = 0
	}
	return n
}

// Vertices returns the vertex sequence. The returned slice is owned by the
// polyline and must not be mutated.
func (pl *Polyline) Vertices() []Vertex {
	return pl.vertices
}

// Pretty Stringer for polylines, in the style of path expressions.
func (pl *Polyline) String() string {
	var s string
	for i, v := range pl.vertices {
		if i > 0 {
			if Is0(pl.vertices[i-1].Turn) {
				s += " -- "
			} else {
				s += " .. "
			}
		}
		s += v.String()
	}
	return s
}
