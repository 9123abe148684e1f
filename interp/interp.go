// Package interp interprets the line-oriented survey-traverse command
// language and turns it into polylines describing land boundaries.
/*

Each input line is one command:

   <id> BEGIN <x> <y>
   <id> BRANCH
   <id> RESUME
   <id> STORE [<n> <e>]
   <id> RECALL|REC
   <id> CLOSE
   <id> UNDO
   <id> <1|2|3|4> <bearing DD.MMSS> <distance>
   <id> <L|R> <delta ddd.mmss> <radius> [<quad 1-4> <bearing DD.MMSS>]
   <id> <DR|DL> <delta ddd.mmss> <distance>

The interpreter maintains a stack of in-progress polylines, a store of
named points, and an append-only report listing. Commands apply strictly
left to right; the first malformed line or violated precondition aborts
the whole run. The only non-fatal diagnostic is the tangency check, which
appends warning text to the listing when adjoining courses do not meet
smoothly.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/traverse"
	"github.com/npillmayer/traverse/course"
	"github.com/npillmayer/traverse/dms"
)

// tracer writes to trace with key 'traverse'
func tracer() tracing.Trace {
	return tracing.Select("traverse")
}

// Interpreter executes traverse commands against a polyline stack, a
// point store, and a report listing. The zero value is not usable,
// create interpreters with New.
type Interpreter struct {
	stack   *traverse.Stack
	points  *traverse.PointStore
	listing []string
}

// New creates an interpreter with an empty stack, point store and listing.
func New() *Interpreter {
	return &Interpreter{
		stack:  traverse.NewStack(),
		points: traverse.NewPointStore(),
	}
}

// Polylines returns the polyline stack in order, bottom to top.
func (ip *Interpreter) Polylines() []*traverse.Polyline {
	return ip.stack.All()
}

// Listing returns the report lines recorded so far.
func (ip *Interpreter) Listing() []string {
	return ip.listing
}

// Run interprets a sequence of input lines. Blank lines and lines starting
// with '#' are skipped. Processing stops at the first error; no partial
// result is returned in that case. On success Run appends a summary to the
// listing and returns the polylines in stack order plus the full listing.
func (ip *Interpreter) Run(lines []string) ([]*traverse.Polyline, []string, error) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			return nil, nil, err
		}
		if err := ip.Exec(cmd); err != nil {
			return nil, nil, err
		}
	}
	ip.summarize()
	return ip.Polylines(), ip.Listing(), nil
}

// Exec applies a single command to the interpreter state. It either fully
// applies the command's effects or returns an error and leaves the state
// untouched.
func (ip *Interpreter) Exec(cmd Command) error {
	tracer().Debugf("exec line %s, op %d", cmd.ID, cmd.Op)
	switch cmd.Op {
	case OpBegin:
		pl := traverse.NewPolyline(traverse.V(cmd.X, cmd.Y), cmd.ID)
		ip.stack.Push(pl)
		ip.logf("Begin polyline %s at  X: %.3f        Y: %.3f", cmd.ID, cmd.X, cmd.Y)
	case OpBranch:
		if ip.stack.Len() == 0 {
			return stateErr(cmd, "no polyline to branch from")
		}
		last := ip.stack.Top().Last()
		ip.stack.Push(traverse.NewPolyline(traverse.V(last.X, last.Y), cmd.ID))
		ip.logf("Branch polyline %s at  X: %.3f        Y: %.3f", cmd.ID, last.X, last.Y)
	case OpResume:
		if ip.stack.Len() < 2 {
			return stateErr(cmd, "no polyline to resume")
		}
		ip.stack.Rotate()
		ip.logf("Resume polyline (%s)", cmd.ID)
	case OpStore:
		v, err := ip.storePoint(cmd)
		if err != nil {
			return err
		}
		ip.logf("Store point %s:  X: %.3f        Y: %.3f", cmd.ID, v.X, v.Y)
	case OpRecall:
		v, ok := ip.points.Get(cmd.ID)
		if !ok {
			return stateErr(cmd, "unknown point "+cmd.ID)
		}
		ip.stack.Push(traverse.NewPolyline(v, cmd.ID))
		ip.logf("Recall point %s:  X: %.3f        Y: %.3f", cmd.ID, v.X, v.Y)
	case OpClose:
		return ip.closeTo(cmd)
	case OpUndo:
		if ip.stack.Len() == 0 {
			return stateErr(cmd, "no point to undo")
		}
		if ip.stack.Top().Drop() == 0 {
			ip.stack.Pop()
		}
		ip.logf("Undo (%s)", cmd.ID)
	case OpLine:
		if ip.stack.Len() == 0 {
			return stateErr(cmd, "no initial point set")
		}
		top := ip.stack.Top()
		next := course.LineByBearing(top.Last(), cmd.Bearing, cmd.Distance)
		top.Append(next, cmd.ID)
		ip.reportSegment(top, fmt.Sprintf("Segment: %s", cmd.ID))
		ip.appendTangency(top)
	case OpCurve:
		return ip.curve(cmd)
	case OpDeflect:
		if ip.stack.Len() == 0 {
			return stateErr(cmd, "no initial point set")
		}
		top := ip.stack.Top()
		if top.N() < 2 {
			return stateErr(cmd, "no back tangent")
		}
		prev, cur := top.Z(top.N()-2), top.Last()
		next := course.Deflection(prev, cur, cmd.Delta, cmd.Distance)
		top.Append(next, cmd.ID)
		ip.reportSegment(top, fmt.Sprintf("Segment: %s", cmd.ID))
		ip.appendTangency(top)
	}
	return nil
}

// Curve commands come in two forms: tangent to the incoming segment, or
// oriented by an explicit radial bearing. Both record the signed sweep on
// the vertex the curve starts from, then append the chord endpoint.
func (ip *Interpreter) curve(cmd Command) error {
	if ip.stack.Len() == 0 {
		return stateErr(cmd, "no initial point set")
	}
	top := ip.stack.Top()
	var next traverse.Vertex
	header := fmt.Sprintf("Segment: %s   Curve %s", cmd.ID, direction(cmd.Delta))
	if cmd.HasRadial {
		next = course.NonTangentCurve(top.Last(), cmd.Delta, cmd.Radius, cmd.Radial)
		header = fmt.Sprintf("Segment: %s   Non-tangent Curve %s   Radial: %s",
			cmd.ID, direction(cmd.Delta), dms.FormatBearing(cmd.Radial, 1))
	} else {
		if top.N() < 2 {
			return stateErr(cmd, "no back tangent")
		}
		next = course.TangentCurve(top.Z(top.N()-2), top.Last(), cmd.Delta, cmd.Radius)
	}
	top.SetTurn(top.N()-1, cmd.Delta)
	top.Append(next, cmd.ID)
	ip.reportSegment(top, header)
	ip.appendTangency(top)
	return nil
}

// storePoint snapshots either the literal coordinates of the command or
// the current endpoint of the top polyline.
func (ip *Interpreter) storePoint(cmd Command) (traverse.Vertex, error) {
	var v traverse.Vertex
	if cmd.HasCoords {
		v = traverse.V(cmd.X, cmd.Y)
	} else {
		if ip.stack.Len() == 0 {
			return v, stateErr(cmd, "no point to store")
		}
		last := ip.stack.Top().Last()
		v = traverse.V(last.X, last.Y)
	}
	ip.points.Put(cmd.ID, v)
	return v, nil
}

// closeTo reports distance and course from the current endpoint to a
// stored point. It mutates no geometry.
func (ip *Interpreter) closeTo(cmd Command) error {
	if ip.stack.Len() == 0 {
		return stateErr(cmd, "no polyline to close")
	}
	v, ok := ip.points.Get(cmd.ID)
	if !ok {
		return stateErr(cmd, "unknown point "+cmd.ID)
	}
	last := ip.stack.Top().Last()
	dist := traverse.Dist(last.P(), v.P())
	a := traverse.Angle(v.P() - last.P())
	ip.logf("Close %s:  Distance: %.3f      Course: %s", cmd.ID, dist, dms.FormatBearing(a, 1))
	return nil
}

// reportSegment appends the course block for the newest segment of pl:
// begin/end coordinates, then distance and course for straight segments,
// or the curve elements for arcs.
func (ip *Interpreter) reportSegment(pl *traverse.Polyline, header string) {
	n := pl.N()
	from, to := pl.Z(n-2), pl.Z(n-1)
	e := course.SegmentElements(from, to)
	ip.log("")
	ip.log(header)
	ip.logf("Begin . . . . .  X: %.3f        Y: %.3f", from.X, from.Y)
	ip.logf("End . . . . . .  X: %.3f        Y: %.3f", to.X, to.Y)
	if traverse.Is0(e.Delta) {
		ip.logf("  Distance: %.3f      Course: %s", e.Distance, dms.FormatBearing(e.Course, 1))
	} else {
		ip.logf("   Tangent: %.3f       Chord: %.3f      Course: %s",
			e.Tangent, e.Distance, dms.FormatBearing(e.Course, 1))
		ip.logf("Arc Length: %.3f      Radius: %.3f       Delta: %s",
			e.Arc, e.Radius, dms.FormatDMS(e.Delta, 1))
	}
}

// appendTangency runs the tangency diagnostic over the last three
// vertices and appends any warning text to the listing.
func (ip *Interpreter) appendTangency(pl *traverse.Polyline) {
	n := pl.N()
	if n < 3 {
		return
	}
	warnings := course.CheckTangency(pl.Z(n-3), pl.Z(n-2), pl.Z(n-1), pl.Tag(n-2), pl.Tag(n-1))
	if len(warnings) == 0 {
		return
	}
	ip.log("")
	for _, w := range warnings {
		ip.log(w)
	}
}

// summarize appends the closing overview: polylines with extent and, for
// closed boundaries, enclosed area, followed by the stored points in
// sorted identifier order.
func (ip *Interpreter) summarize() {
	ip.log("")
	ip.logf("Polylines: %d      Stored points: %d", ip.stack.Len(), ip.points.N())
	for i, pl := range ip.stack.All() {
		if pl.IsClosed() {
			ip.logf("Polyline %d: %d points, closed      Area: %.3f", i+1, pl.N(), pl.Area())
		} else {
			ip.logf("Polyline %d: %d points, open", i+1, pl.N())
		}
		min, max := pl.Extent()
		ip.logf("    Extent X: %.3f .. %.3f      Y: %.3f .. %.3f",
			min.X(), max.X(), min.Y(), max.Y())
	}
	for _, id := range ip.points.IDs() {
		v, _ := ip.points.Get(id)
		ip.logf("Point %s:  X: %.3f        Y: %.3f", id, v.X, v.Y)
	}
}

func (ip *Interpreter) log(line string) {
	ip.listing = append(ip.listing, line)
}

func (ip *Interpreter) logf(format string, args ...interface{}) {
	ip.listing = append(ip.listing, fmt.Sprintf(format, args...))
}

func stateErr(cmd Command, msg string) error {
	return fmt.Errorf("%w: line %s: %s: %q", ErrState, cmd.ID, msg, cmd.Raw)
}

// direction names the turn sense of a signed sweep. Sweeps are
// counter-clockwise positive internally, so right-hand (clockwise)
// curves carry negative deltas.
func direction(delta float64) string {
	if delta < 0 {
		return "Right"
	}
	return "Left"
}
