// Polycalc interprets a survey-traverse line-data file and writes the
// resulting boundaries as a DXF drawing plus a plain-text course report.
//
// Usage:
//
//	polycalc [-o out.dxf] [-report out.txt] [-meters] linedata.txt
//
// If a run fails, the error names the offending input line and no output
// artifact is written.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/traverse/dxf"
	"github.com/npillmayer/traverse/interp"
)

func main() {
	dxfPath := flag.String("o", "out.dxf", "DXF output file")
	reportPath := flag.String("report", "", "report output file (default stdout)")
	meters := flag.Bool("meters", false, "drawing units are meters instead of feet")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: polycalc [options] linedata.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *dxfPath, *reportPath, *meters); err != nil {
		fmt.Fprintln(os.Stderr, "polycalc:", err)
		os.Exit(1)
	}
}

func run(linedata, dxfPath, reportPath string, meters bool) error {
	data, err := os.ReadFile(linedata)
	if err != nil {
		return err
	}
	polys, listing, err := interp.New().Run(strings.Split(string(data), "\n"))
	if err != nil {
		return err
	}
	out := os.Stdout
	if reportPath != "" {
		if out, err = os.Create(reportPath); err != nil {
			return err
		}
		defer out.Close()
	}
	for _, line := range listing {
		fmt.Fprintln(out, line)
	}
	units := dxf.UnitFoot
	if meters {
		units = dxf.UnitMeter
	}
	f, err := os.Create(dxfPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return dxf.Write(f, polys, units)
}
