// Package dms converts between the angle notations of survey-traverse
// records and an internal radians representation.
/*

Three notations are supported:

  - Signed degrees-minutes-seconds, written as a compact decimal
    '[-]DDD.MMSS' (degrees 0–359, minutes and seconds 0–59). The sign
    convention of the written form is clockwise positive, so parsing
    negates the value to obtain counter-clockwise radians.

  - Quadrant bearings, a quadrant number 1–4 (NE, SE, SW, NW) plus an
    angle 'DD.MMSS' (degrees 0–90) measured from north or south toward
    east or west.

  - The "image" string forms used in report listings, e.g.

       N45°00'00.0"E        10°15'59.9"

    produced by FormatBearing and FormatDMS.

Internally all angles are radians, measured counter-clockwise from the
positive x-axis (x = easting, y = northing).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package dms

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/traverse"
)

// tracer writes to trace with key 'traverse'
func tracer() tracing.Trace {
	return tracing.Select("traverse")
}

// ErrFormat indicates an angle field which does not match its pattern or
// carries an out-of-range degrees/minutes/seconds value.
var ErrFormat = errors.New("bad angle format")

var dmsPattern = regexp.MustCompile(`^(-)?(\d{1,3})\.(\d{2})(\d{2})$`)
var bearingPattern = regexp.MustCompile(`^(\d{1,2})\.(\d{2})(\d{2})$`)

var quadrants = [4]string{"NE", "SE", "SW", "NW"}

// ParseDMS converts a signed DMS string '[-]DDD.MMSS' (clockwise positive)
// to counter-clockwise radians.
func ParseDMS(dms string) (float64, error) {
	m := dmsPattern.FindStringSubmatch(dms)
	if m == nil {
		return 0, fmt.Errorf("%w: %q does not match [-]DDD.MMSS", ErrFormat, dms)
	}
	deg, min, sec := atoi(m[2]), atoi(m[3]), atoi(m[4])
	if deg >= 360 || min >= 60 || sec >= 60 {
		return 0, fmt.Errorf("%w: %q field out of range", ErrFormat, dms)
	}
	d := float64(deg) + float64(min)/60 + float64(sec)/3600
	if m[1] == "-" {
		d = -d
	}
	return -d * traverse.Deg2Rad, nil
}

// ParseBearing converts a quadrant number 1–4 plus a bearing string
// 'DD.MMSS' (degrees 0–90) to counter-clockwise radians from east.
// Quadrants 1 and 3 measure from north/south toward east/west as
// (2−q)·90° − angle, quadrants 2 and 4 as (1−q)·90° + angle.
func ParseBearing(quad int, brg string) (float64, error) {
	if quad < 1 || quad > 4 {
		return 0, fmt.Errorf("%w: quadrant %d not in 1..4", ErrFormat, quad)
	}
	m := bearingPattern.FindStringSubmatch(brg)
	if m == nil {
		return 0, fmt.Errorf("%w: %q does not match DD.MMSS", ErrFormat, brg)
	}
	deg, min, sec := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if deg > 90 || min >= 60 || sec >= 60 {
		return 0, fmt.Errorf("%w: %q field out of range", ErrFormat, brg)
	}
	d := float64(deg) + float64(min)/60 + float64(sec)/3600
	var a float64
	if quad%2 == 1 {
		a = float64(2-quad)*90 - d // quadrants 1 and 3
	} else {
		a = float64(1-quad)*90 + d // quadrants 2 and 4
	}
	return a * traverse.Deg2Rad, nil
}

// FormatBearing returns the quadrant-bearing image of an angle, e.g.
// "S38°10'25.4"W", with seconds rounded to secDecimals digits.
func FormatBearing(a float64, secDecimals int) string {
	azi := math.Mod(90-a/traverse.Deg2Rad, 360)
	if azi < 0 {
		azi += 360
	}
	quad := int(azi / 90)
	var deg float64
	if quad%2 == 1 {
		deg = 90 - math.Mod(azi, 90)
	} else {
		deg = math.Mod(azi, 90)
	}
	d, m, s := carve(deg, secDecimals)
	q := quadrants[quad]
	return fmt.Sprintf("%c%d°%02d'%0*.*f\"%c",
		q[0], d, m, secDecimals+3, secDecimals, s, q[1])
}

// FormatDMS returns the signed DMS image of a raw angle, e.g.
// "-86°52'10.9"", with seconds rounded to secDecimals digits. The written
// sign convention is clockwise positive, the inverse of ParseDMS.
func FormatDMS(a float64, secDecimals int) string {
	sign := ""
	if a > 0 {
		sign = "-"
		a = -a
	}
	d, m, s := carve(-a/traverse.Deg2Rad, secDecimals)
	return fmt.Sprintf("%s%d°%02d'%0*.*f\"", sign, d, m, secDecimals+3, secDecimals, s)
}

// Carve decimal degrees into integer degrees and minutes plus fractional
// seconds, rounding seconds to secDecimals digits. If the rounded seconds
// are within 10^-secDecimals of 60.0 the carry propagates: seconds reset to
// 0 and minutes increment, and 60 minutes increment the degrees.
func carve(deg float64, secDecimals int) (int, int, float64) {
	mins := math.Mod(deg*60, 60)
	secs := math.Mod(mins*60, 60)
	d := int(math.Round(deg - mins/60))
	m := int(math.Round(mins - secs/60))
	pow := math.Pow(10, float64(secDecimals))
	s := math.Round(secs*pow) / pow
	if math.Abs(s-60) <= 1/pow {
		tracer().Debugf("seconds carry at %d°%02d'%g\"", d, m, secs)
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return d, m, s
}

// atoi on digit-only strings pre-validated by the patterns above.
func atoi(digits string) int {
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	return n
}
