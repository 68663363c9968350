// Package format renders single values for the report formatters.
package format

import (
	"github.com/mpapenbr/fmtune-formatter/pkg/convert"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

// decimals used when a value is displayed in a unit
var displayPrecision = map[units.Unit]int{
	units.Bar:   2,
	units.PSI:   1,
	units.CM:    1,
	units.Inch:  1,
	units.KGFMM: 2,
	units.LBSIN: 1,
}

// DisplayPrecision returns the number of decimals used for values in unit u.
func DisplayPrecision(u units.Unit) int {
	return displayPrecision[u]
}

// FormatUnit returns the value in unit and in the opposite unit, both with the
// same precision. Blank or non numeric values yield two empty strings.
func FormatUnit(value string, unit units.Unit, precision int, showUnit bool) [2]string {
	return FormatUnitPrecision(value, unit, precision, precision, showUnit)
}

// FormatUnitPrecision is FormatUnit with independent precision for both representations.
func FormatUnitPrecision(
	value string,
	unit units.Unit,
	primaryPrecision, secondaryPrecision int,
	showUnit bool,
) [2]string {
	v, ok := convert.Parse(value).Get()
	if !ok {
		return [2]string{"", ""}
	}
	opposite := units.Opposite(unit)
	ret := [2]string{
		convert.Fixed(v, primaryPrecision),
		convert.Fixed(convert.ToOpposite(v, unit), secondaryPrecision),
	}
	if showUnit {
		ret[0] += " " + units.Label(unit)
		ret[1] += " " + units.Label(opposite)
	}
	return ret
}

// FormatDisplay is FormatUnitPrecision using DisplayPrecision for both units.
func FormatDisplay(value string, unit units.Unit, showUnit bool) [2]string {
	return FormatUnitPrecision(value, unit,
		DisplayPrecision(unit), DisplayPrecision(units.Opposite(unit)), showUnit)
}

// FormatUnitHeaders returns the column headers for a dual unit table.
func FormatUnitHeaders(unit units.Unit) [2]string {
	return [2]string{units.Label(unit), units.Label(units.Opposite(unit))}
}
