// Package convert maps values between the paired units of a physical quantity.
//
// All functions are pure. Input values are coerced permissively: anything that does not
// parse as a float counts as 0.
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

// EnsureFloat parses s as float. Blank or unparsable input yields 0.
func EnsureFloat(s string) float64 {
	return Parse(s).GetOr(0)
}

// Parse parses s as float. The result is unset for blank or unparsable input.
func Parse(s string) omit.Val[float64] {
	s = strings.TrimSpace(s)
	if s == "" {
		return omit.Val[float64]{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return omit.Val[float64]{}
	}
	return omit.From(f)
}

// ToOpposite converts v given in unit from into units.Opposite(from).
func ToOpposite(v float64, from units.Unit) float64 {
	m := table
	switch from {
	case units.Bar:
		return v / m.Pressure
	case units.PSI:
		return v * m.Pressure
	case units.CM:
		return v * m.Length
	case units.Inch:
		return v / m.Length
	case units.KGF, units.KG:
		return v / m.Force
	case units.LBF, units.LBS:
		return v * m.Force
	case units.KPH:
		return v * m.Speed
	case units.MPH:
		return v / m.Speed
	case units.KW:
		return v / m.Power
	case units.HP:
		return v * m.Power
	case units.NM:
		return v / m.Torque
	case units.LBFT:
		return v * m.Torque
	case units.KGFMM, units.LBSIN:
		return FromNewtons(ToNewtons(v, from), units.Opposite(from))
	}
	panic(fmt.Sprintf("convert: no conversion for unit %q", string(from)))
}

// To converts v from one unit into another unit of the same quantity.
func To(v float64, from, to units.Unit) float64 {
	switch {
	case from == to:
		return v
	case to == units.Newtons:
		return ToNewtons(v, from)
	case from == units.Newtons:
		return FromNewtons(v, to)
	case units.Opposite(from) == to:
		return ToOpposite(v, from)
	}
	panic(fmt.Sprintf("convert: cannot convert %s to %s", from, to))
}

// ToNewtons converts a spring rate into the newtons basis.
func ToNewtons(v float64, from units.Unit) float64 {
	switch from {
	case units.KGFMM:
		return v / table.SpringKGFMM
	case units.LBSIN:
		return v / (table.SpringLBSIN * springLBSINScale)
	case units.Newtons:
		return v
	}
	panic(fmt.Sprintf("convert: %q is not a spring rate unit", string(from)))
}

// FromNewtons converts a spring rate in the newtons basis into unit to.
func FromNewtons(v float64, to units.Unit) float64 {
	switch to {
	case units.KGFMM:
		return v * table.SpringKGFMM
	case units.LBSIN:
		return v * table.SpringLBSIN * springLBSINScale
	case units.Newtons:
		return v
	}
	panic(fmt.Sprintf("convert: %q is not a spring rate unit", string(to)))
}

// WeightToMass converts a weight in kg or lbs into mass.
// The value is taken to newtons using the spring rate constants, then divided by gravity.
// For lbs this does not yield the physical mass; callers rely on the result as is.
func WeightToMass(value string, from units.Unit) float64 {
	v := EnsureFloat(value)
	var newtons float64
	switch from {
	case units.KG:
		newtons = v / table.SpringKGFMM
	case units.LBS:
		newtons = v / table.SpringLBSIN
	default:
		panic(fmt.Sprintf("convert: %q is not a weight unit", string(from)))
	}
	return newtons / table.Gravity
}

// Convert converts value from unit into its opposite and returns a fixed point string
// with the given number of decimals.
func Convert(value string, from units.Unit, decimals int) string {
	return Fixed(ToOpposite(EnsureFloat(value), from), decimals)
}

// ConvertDefault is Convert with 0 decimals.
func ConvertDefault(value string, from units.Unit) string {
	return Convert(value, from, 0)
}

// ConvertFrom returns every representation of value keyed by unit.
// Spring rates include the newtons basis.
func ConvertFrom(value string, from units.Unit) map[units.Unit]float64 {
	v := EnsureFloat(value)
	ret := map[units.Unit]float64{
		from:                 v,
		units.Opposite(from): ToOpposite(v, from),
	}
	if units.QuantityOf(from) == units.SpringRate {
		ret[units.Newtons] = ToNewtons(v, from)
	}
	return ret
}
