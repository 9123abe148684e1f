package course

import (
	"fmt"
	"math"

	"github.com/npillmayer/traverse"
	"github.com/npillmayer/traverse/dms"
)

// Tangent differences are rounded to 6 decimals before comparing
// against zero.
const tangencyScale = 1e6

// CheckTangency verifies that two adjoining segments p0→p1 and p1→p2 meet
// smoothly at p1. The incoming tangent at p1 is the chord direction of
// p0→p1 corrected by half the sweep recorded at p0; the outgoing tangent
// at p1 is the chord direction of p1→p2 corrected back by half the sweep
// recorded at p1. A non-zero difference yields "not tangent" diagnostics
// naming the two segments; prevID and curID are the report tags of p1
// and p2.
//
// This guards against operator data-entry errors chaining curve and line
// courses that do not actually meet smoothly. It is a diagnostic only and
// never stops a traverse run.
func CheckTangency(p0, p1, p2 traverse.Vertex, prevID, curID string) []string {
	if traverse.Is0(p0.Turn) && traverse.Is0(p1.Turn) {
		return nil // two straight segments cannot break tangency
	}
	out := traverse.Angle(p2.P()-p1.P()) - p1.Turn/2
	in := traverse.Angle(p1.P()-p0.P()) + p0.Turn/2
	da := out - in
	if math.Round(da*tangencyScale) == 0 {
		return nil
	}
	tracer().Infof("segments %s/%s not tangent, da = %.8f", prevID, curID, da)
	return []string{
		fmt.Sprintf("### Segment %s is not tangent to %s.", curID, prevID),
		fmt.Sprintf("### Difference in tangents: %s", dms.FormatDMS(da, 1)),
	}
}
