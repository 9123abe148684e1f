package traverse

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
)

// IsClosed is a predicate: does the polyline return to its start point?
func (pl *Polyline) IsClosed() bool {
	if pl.N() < 3 {
		return false
	}
	return pl.Z(0).P().Equal(pl.Last().P())
}

// Contour returns the polyline's vertex locations as a clipping contour.
// Turn annotations are dropped; arcs contribute their chords only.
func (pl *Polyline) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pl.N())
	for _, v := range pl.vertices {
		c = append(c, polyclip.Point{X: v.X, Y: v.Y})
	}
	return c
}

// Extent returns the bounding box of the polyline as (min, max) pairs.
func (pl *Polyline) Extent() (Pair, Pair) {
	bb := pl.Contour().BoundingBox()
	return P(bb.Min.X, bb.Min.Y), P(bb.Max.X, bb.Max.Y)
}

// Area returns the unsigned enclosed area of a closed polyline, computed
// over the vertex chords. It returns 0 for open polylines.
func (pl *Polyline) Area() float64 {
	if !pl.IsClosed() {
		return 0
	}
	var a float64
	n := pl.N()
	for i := 0; i < n; i++ {
		p, q := pl.vertices[i], pl.vertices[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a / 2)
}
