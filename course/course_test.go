package course

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/traverse"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLineByBearing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := LineByBearing(traverse.V(0, 0), 0, 100)
	if !near(v.X, 100) || !near(v.Y, 0) {
		t.Errorf("Expected east course to end at (100,0), got %v", v)
	}
	v = LineByBearing(traverse.V(10, 10), math.Pi/2, 5)
	if !near(v.X, 10) || !near(v.Y, 15) {
		t.Errorf("Expected north course to end at (10,15), got %v", v)
	}
}

func TestTangentCurveQuarter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Heading north at (0,100), turning right through 90° with radius 50
	// ends at (50,150), heading east.
	prev, cur := traverse.V(0, 0), traverse.V(0, 100)
	v := TangentCurve(prev, cur, -math.Pi/2, 50)
	if !near(v.X, 50) || !near(v.Y, 150) {
		t.Errorf("Expected quarter curve to end at (50,150), got %v", v)
	}
}

func TestTangentCurveChordLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	prev, cur := traverse.V(2, 3), traverse.V(40, -7)
	for _, delta := range []float64{-math.Pi / 2, math.Pi / 3, -0.2, 1.7} {
		for _, radius := range []float64{10, 50, 123.45} {
			v := TangentCurve(prev, cur, delta, radius)
			want := math.Abs(2 * radius * math.Sin(delta/2))
			got := traverse.Dist(cur.P(), v.P())
			if !near(got, want) {
				t.Errorf("Expected chord %g for delta %g radius %g, got %g",
					want, delta, radius, got)
			}
		}
	}
}

func TestTangentCurveAfterCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// A second curve must take its back tangent from the chord of the
	// first, corrected by half the incoming sweep: after a right quarter
	// curve from north the heading is east, so a left quarter curve with
	// radius 50 ends at (100,200).
	prev := traverse.Vertex{X: 0, Y: 100, Turn: -math.Pi / 2}
	cur := traverse.V(50, 150)
	v := TangentCurve(prev, cur, math.Pi/2, 50)
	if !near(v.X, 100) || !near(v.Y, 200) {
		t.Errorf("Expected chained curve to end at (100,200), got %v", v)
	}
}

func TestNonTangentCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := NonTangentCurve(traverse.V(0, 0), -math.Pi/2, 50, 0)
	if !near(v.X, 50) || !near(v.Y, 50) {
		t.Errorf("Expected non-tangent curve to end at (50,50), got %v", v)
	}
	// Opposite turn sense flips the tangent-equivalent direction.
	v = NonTangentCurve(traverse.V(0, 0), math.Pi/2, 50, 0)
	if !near(v.X, 50) || !near(v.Y, -50) {
		t.Errorf("Expected left non-tangent curve to end at (50,-50), got %v", v)
	}
}

func TestDeflection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Heading east at (100,0), deflecting right through 90° for 50 units.
	v := Deflection(traverse.V(0, 0), traverse.V(100, 0), -math.Pi/2, 50)
	if !near(v.X, 100) || !near(v.Y, -50) {
		t.Errorf("Expected deflection to end at (100,-50), got %v", v)
	}
}

func TestSegmentElementsLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := SegmentElements(traverse.V(0, 0), traverse.V(0, 100))
	if !near(e.Distance, 100) || !near(e.Course, math.Pi/2) {
		t.Errorf("Expected distance 100 course pi/2, got %+v", e)
	}
	if e.Radius != 0 || e.Arc != 0 || e.Tangent != 0 {
		t.Errorf("Expected no curve elements for a straight segment, got %+v", e)
	}
}

func TestSegmentElementsCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	from := traverse.Vertex{X: 0, Y: 100, Turn: -math.Pi / 2}
	e := SegmentElements(from, traverse.V(50, 150))
	if !near(e.Distance, 100*math.Sin(math.Pi/4)) {
		t.Errorf("Expected chord 70.711, got %g", e.Distance)
	}
	if !near(e.Radius, 50) {
		t.Errorf("Expected radius 50, got %g", e.Radius)
	}
	if !near(e.Arc, 50*math.Pi/2) {
		t.Errorf("Expected arc length 78.540, got %g", e.Arc)
	}
	if !near(e.Tangent, 50) {
		t.Errorf("Expected tangent length 50, got %g", e.Tangent)
	}
	if !near(e.Course, math.Pi/4) {
		t.Errorf("Expected chord course pi/4, got %g", e.Course)
	}
}

func TestTangencyCleanChain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Line north, then a tangent right quarter curve: perfectly smooth.
	p0 := traverse.V(0, 0)
	p1 := traverse.Vertex{X: 0, Y: 100, Turn: -math.Pi / 2}
	p2 := traverse.V(50, 150)
	if w := CheckTangency(p0, p1, p2, "2", "3"); w != nil {
		t.Errorf("Expected no tangency warning, got %v", w)
	}
}

func TestTangencyStraightSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if w := CheckTangency(traverse.V(0, 0), traverse.V(1, 1), traverse.V(5, -3), "a", "b"); w != nil {
		t.Errorf("Expected no warning for straight segments, got %v", w)
	}
}

func TestTangencyWarning(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Perturbing the curve endpoint breaks tangency.
	p0 := traverse.V(0, 0)
	p1 := traverse.Vertex{X: 0, Y: 100, Turn: -math.Pi / 2}
	p2 := traverse.V(50, 160)
	w := CheckTangency(p0, p1, p2, "2", "3")
	if len(w) != 2 {
		t.Fatalf("Expected two warning lines, got %v", w)
	}
	if !strings.Contains(w[0], "Segment 3 is not tangent to 2") {
		t.Errorf("Unexpected warning text: %s", w[0])
	}
	if !strings.Contains(w[1], "Difference in tangents:") {
		t.Errorf("Unexpected warning text: %s", w[1])
	}
}
