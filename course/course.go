// Package course computes survey-traverse courses: straight lines by
// bearing and distance, circular curves by delta angle and radius
// (tangent or non-tangent), and deflection-angle courses.
//
// All functions are pure: they take a starting vertex (plus, where a back
// tangent is needed, its predecessor) and return the vertex to append.
// Angles are radians, counter-clockwise from the positive x-axis. Curve
// deltas follow the traverse sign convention: clockwise (right) turns are
// negative in the internal counter-clockwise-positive representation.
//
// # BSD License
//
// # Copyright (c) Norbert Pillmayer
//
// All rights reserved.
//
// Please refer to the license file for more information.
package course

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/traverse"
)

// tracer writes to trace with key 'traverse'
func tracer() tracing.Trace {
	return tracing.Select("traverse")
}

// LineByBearing returns the vertex at the given direction and distance
// from a starting vertex.
func LineByBearing(from traverse.Vertex, bearing, distance float64) traverse.Vertex {
	p := (from.P() + traverse.Polar(distance, bearing)).Zap()
	return traverse.V(p.X(), p.Y())
}

// Back tangent at cur: the direction of travel when arriving at cur.
// If the incoming segment was itself curved, the chord direction is
// corrected by half the incoming sweep.
func backTangent(prev, cur traverse.Vertex) float64 {
	return traverse.Angle(cur.P()-prev.P()) + prev.Turn/2
}

// Chord length of a circular arc with the given sweep and radius.
func chord(delta, radius float64) float64 {
	return math.Abs(2 * radius * math.Sin(delta/2))
}

// TangentCurve returns the chord endpoint of a circular curve starting at
// cur, tangent to the incoming segment prev→cur. The caller is responsible
// for recording delta as the turn of cur.
func TangentCurve(prev, cur traverse.Vertex, delta, radius float64) traverse.Vertex {
	t := backTangent(prev, cur)
	c := chord(delta, radius)
	tracer().Debugf("tangent curve at %s: t = %.6f, chord = %.3f", cur, t, c)
	p := (cur.P() + traverse.Polar(c, t+delta/2)).Zap()
	return traverse.V(p.X(), p.Y())
}

// NonTangentCurve returns the chord endpoint of a circular curve starting
// at cur whose orientation is given by the bearing of the radial line from
// the curve center to cur, instead of a back tangent. The caller is
// responsible for recording delta as the turn of cur.
func NonTangentCurve(cur traverse.Vertex, delta, radius, radialBearing float64) traverse.Vertex {
	t := radialBearing - math.Copysign(math.Pi/2, delta)
	c := chord(delta, radius)
	tracer().Debugf("non-tangent curve at %s: t = %.6f, chord = %.3f", cur, t, c)
	p := (cur.P() + traverse.Polar(c, t+delta/2)).Zap()
	return traverse.V(p.X(), p.Y())
}

// Deflection returns the vertex at the given distance from cur, deflected
// by delta from the back tangent of the incoming segment prev→cur.
func Deflection(prev, cur traverse.Vertex, delta, distance float64) traverse.Vertex {
	t := backTangent(prev, cur)
	p := (cur.P() + traverse.Polar(distance, t+delta)).Zap()
	return traverse.V(p.X(), p.Y())
}

// Elements describes a computed course between two consecutive vertices.
// For straight segments only Distance and Course are set. For curve
// segments Distance is the chord length and the curve elements Radius,
// Arc, and Tangent are derived from chord and sweep, all as magnitudes.
type Elements struct {
	Distance float64 // segment length, or chord length for curves
	Course   float64 // chord direction, ccw radians from +x
	Delta    float64 // signed arc sweep, 0 for straight segments
	Radius   float64
	Arc      float64
	Tangent  float64
}

// SegmentElements computes the reportable elements of the segment from one
// vertex to the next. The sweep delta is taken from the turn recorded at
// the starting vertex.
func SegmentElements(from, to traverse.Vertex) Elements {
	v := to.P() - from.P()
	e := Elements{
		Distance: traverse.Dist(from.P(), to.P()),
		Course:   traverse.Angle(v),
		Delta:    from.Turn,
	}
	if !traverse.Is0(e.Delta) {
		e.Radius = math.Abs(e.Distance / 2 / math.Sin(e.Delta/2))
		e.Arc = e.Radius * math.Abs(e.Delta)
		e.Tangent = e.Radius * math.Tan(math.Abs(e.Delta)/2)
	}
	return e
}
