// Package dxf serializes traverse polylines as a minimal ASCII DXF
// document with one LWPOLYLINE entity per polyline. Arc sweeps recorded
// on vertices become bulge values: bulge = tan(turn/4), sign preserving,
// omitted on straight segments and on the final vertex of a polyline.
//
// The output is deliberately small: a HEADER section carrying the drawing
// units and an ENTITIES section. It is meant for interchange with CAD
// packages, not for round-tripping full drawing files.
//
// # BSD License
//
// # Copyright (c) Norbert Pillmayer
//
// All rights reserved.
//
// Please refer to the license file for more information.
package dxf

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/traverse"
)

// tracer writes to trace with key 'traverse'
func tracer() tracing.Trace {
	return tracing.Select("traverse")
}

// Drawing units for the $INSUNITS header variable.
const (
	UnitFoot  = 2
	UnitMeter = 6
)

// Bulge converts a signed arc sweep to the DXF bulge encoding,
// tan(turn/4) with the sign of the sweep.
func Bulge(turn float64) float64 {
	if traverse.Is0(turn) {
		return 0
	}
	return math.Copysign(math.Tan(turn/4), turn)
}

// Writer emits DXF tagged data, one group code and one value per line.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps an output stream for DXF tag emission.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (dw *Writer) tag(code int, value string) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, "%d\n%s\n", code, value)
}

func (dw *Writer) tagf(code int, format string, args ...interface{}) {
	dw.tag(code, fmt.Sprintf(format, args...))
}

// Polyline emits one LWPOLYLINE entity on layer 0.
func (dw *Writer) Polyline(pl *traverse.Polyline) {
	n := pl.N()
	tracer().Debugf("dxf polyline with %d vertices", n)
	dw.tag(0, "LWPOLYLINE")
	dw.tag(8, "0")
	dw.tagf(90, "%d", n)
	dw.tag(70, "0")
	for i, v := range pl.Vertices() {
		dw.tagf(10, "%.9f", v.X)
		dw.tagf(20, "%.9f", v.Y)
		if b := Bulge(v.Turn); b != 0 && i < n-1 {
			dw.tagf(42, "%.9f", b)
		}
	}
}

// Flush writes buffered output and reports the first emission error.
func (dw *Writer) Flush() error {
	if dw.err != nil {
		return dw.err
	}
	return dw.w.Flush()
}

// Write serializes a collection of polylines as a complete DXF document
// with the given drawing units.
func Write(w io.Writer, polys []*traverse.Polyline, units int) error {
	dw := NewWriter(w)
	dw.tag(0, "SECTION")
	dw.tag(2, "HEADER")
	dw.tag(9, "$INSUNITS")
	dw.tagf(70, "%d", units)
	dw.tag(0, "ENDSEC")
	dw.tag(0, "SECTION")
	dw.tag(2, "ENTITIES")
	for _, pl := range polys {
		dw.Polyline(pl)
	}
	dw.tag(0, "ENDSEC")
	dw.tag(0, "EOF")
	return dw.Flush()
}
