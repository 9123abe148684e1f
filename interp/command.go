package interp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/traverse/dms"
)

var (
	// ErrFormat indicates malformed line syntax, a bad numeric or angle
	// field, or an unrecognized command token.
	ErrFormat = errors.New("bad line format")
	// ErrState indicates a command issued against a violated state
	// precondition, e.g. a curve without a back tangent.
	ErrState = errors.New("bad traverse state")
)

// Op enumerates the traverse command kinds.
type Op int

// The command set of the traverse language.
const (
	OpBegin   Op = iota // start a new polyline at literal coordinates
	OpBranch            // start a new polyline at the current endpoint
	OpResume            // move the top polyline to the bottom of the stack
	OpStore             // snapshot a point into the point store
	OpRecall            // start a new polyline at a stored point
	OpClose             // report closure distance/course to a stored point
	OpUndo              // pop the last vertex
	OpLine              // straight course by quadrant bearing and distance
	OpCurve             // circular curve by delta and radius
	OpDeflect           // straight course by deflection angle and distance
)

// Command is one parsed input line. ID is the line identifier, opaque and
// used only for reporting; for STORE, RECALL and CLOSE it doubles as the
// point identifier. Raw keeps the original line text for diagnostics.
type Command struct {
	ID  string
	Op  Op
	Raw string

	X, Y      float64 // BEGIN; STORE with literal coordinates
	HasCoords bool    // STORE carries literal coordinates
	Bearing   float64 // line course direction, ccw radians
	Delta     float64 // signed curve/deflection sweep, ccw radians
	Radius    float64
	Distance  float64
	Radial    float64 // radial bearing of a non-tangent curve, ccw radians
	HasRadial bool
}

// Parse splits an input line on whitespace into [id, cmd, params...] and
// validates the parameters for the command kind. Angle fields go through
// the dms codec; curve and deflection deltas are negated for the L/DL
// (left) direction codes so that the signed sweep is ready for the
// geometry engine.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Command{}, fmt.Errorf("%w: need id and command: %q", ErrFormat, line)
	}
	cmd := Command{ID: fields[0], Raw: line}
	op := fields[1]
	params := fields[2:]
	var err error
	switch op {
	case "BEGIN":
		cmd.Op = OpBegin
		if err = arity(cmd, params, 2); err != nil {
			return cmd, err
		}
		if cmd.X, cmd.Y, err = coords(cmd, params); err != nil {
			return cmd, err
		}
	case "BRANCH":
		cmd.Op = OpBranch
		err = arity(cmd, params, 0)
	case "RESUME":
		cmd.Op = OpResume
		err = arity(cmd, params, 0)
	case "STORE":
		cmd.Op = OpStore
		if len(params) != 0 && len(params) != 2 {
			return cmd, badLine(cmd, "STORE takes no or two coordinates")
		}
		if len(params) == 2 {
			cmd.HasCoords = true
			if cmd.Y, cmd.X, err = coords(cmd, params); err != nil { // northing first
				return cmd, err
			}
		}
	case "RECALL", "REC":
		cmd.Op = OpRecall
		err = arity(cmd, params, 0)
	case "CLOSE":
		cmd.Op = OpClose
		err = arity(cmd, params, 0)
	case "UNDO":
		cmd.Op = OpUndo
		err = arity(cmd, params, 0)
	case "1", "2", "3", "4":
		cmd.Op = OpLine
		if err = arity(cmd, params, 2); err != nil {
			return cmd, err
		}
		quad := int(op[0] - '0')
		if cmd.Bearing, err = bearing(cmd, quad, params[0]); err != nil {
			return cmd, err
		}
		cmd.Distance, err = number(cmd, params[1], "distance")
	case "L", "R":
		cmd.Op = OpCurve
		if len(params) != 2 && len(params) != 4 {
			return cmd, badLine(cmd, "curve takes delta and radius, with optional radial bearing")
		}
		if cmd.Delta, err = delta(cmd, params[0], op == "L"); err != nil {
			return cmd, err
		}
		if cmd.Radius, err = number(cmd, params[1], "radius"); err != nil {
			return cmd, err
		}
		if len(params) == 4 {
			cmd.HasRadial = true
			quad, aerr := strconv.Atoi(params[2])
			if aerr != nil {
				return cmd, badLine(cmd, "radial quadrant is not a number")
			}
			cmd.Radial, err = bearing(cmd, quad, params[3])
		}
	case "DR", "DL":
		cmd.Op = OpDeflect
		if err = arity(cmd, params, 2); err != nil {
			return cmd, err
		}
		if cmd.Delta, err = delta(cmd, params[0], op == "DL"); err != nil {
			return cmd, err
		}
		cmd.Distance, err = number(cmd, params[1], "distance")
	default:
		return cmd, badLine(cmd, "unknown command "+op)
	}
	return cmd, err
}

func badLine(cmd Command, msg string) error {
	return fmt.Errorf("%w: line %s: %s: %q", ErrFormat, cmd.ID, msg, cmd.Raw)
}

func arity(cmd Command, params []string, n int) error {
	if len(params) != n {
		return badLine(cmd, fmt.Sprintf("want %d parameters, got %d", n, len(params)))
	}
	return nil
}

func number(cmd Command, field, what string) (float64, error) {
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, badLine(cmd, "bad "+what+" "+field)
	}
	return f, nil
}

func coords(cmd Command, params []string) (float64, float64, error) {
	a, err := number(cmd, params[0], "coordinate")
	if err != nil {
		return 0, 0, err
	}
	b, err := number(cmd, params[1], "coordinate")
	return a, b, err
}

func bearing(cmd Command, quad int, field string) (float64, error) {
	a, err := dms.ParseBearing(quad, field)
	if err != nil {
		return 0, fmt.Errorf("%w: line %s: %v: %q", ErrFormat, cmd.ID, err, cmd.Raw)
	}
	return a, nil
}

// delta parses a signed DMS sweep and negates it for the left-hand
// direction codes L and DL.
func delta(cmd Command, field string, left bool) (float64, error) {
	a, err := dms.ParseDMS(field)
	if err != nil {
		return 0, fmt.Errorf("%w: line %s: %v: %q", ErrFormat, cmd.ID, err, cmd.Raw)
	}
	if left {
		a = -a
	}
	return a, nil
}
