package format

import (
	"fmt"
	"strings"
	"unicode"
)

// labels for keys the generic conversion does not get right
var labelOverrides = map[string]string{
	"frontArb":                "ARB F",
	"rearArb":                 "ARB R",
	"pistonsCompression":      "Pistons / Compression",
	"oilCooling":              "Oil / Cooling",
	"springsDampers":          "Springs / Dampers",
	"frontWidth":              "Tire Width F",
	"rearWidth":               "Tire Width R",
	"frontSize":               "Rim Size F",
	"rearSize":                "Rim Size R",
	"frontTrackWidth":         "Track Width F",
	"rearTrackWidth":          "Track Width R",
	"style":                   "Rim Style",
	"bodyKit":                 "Body Kit",
	"twinTurbo":               "Twin Turbo",
	"restrictorPlate":         "Restrictor Plate",
	"chassisReinforcement":    "Chassis Reinforcement / Roll Cage",
	"engine":                  "Engine Swap",
	"drivetrain":              "Drivetrain Swap",
	"centrifugalSupercharger": "Centrifugal SC",
}

// Label converts a field key into a human readable label,
// e.g. "intakeManifold" -> "Intake Manifold".
func Label(key string) string {
	if l, ok := labelOverrides[key]; ok {
		return l
	}
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Ordinal returns n with its English ordinal suffix (1st, 2nd, 3rd, 4th, 11th, 21st).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
