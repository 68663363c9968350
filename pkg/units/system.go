package units

import (
	"fmt"
	"strings"
)

// GlobalUnitSystem is the user preference used for weight, power, torque and speed.
type GlobalUnitSystem string

const (
	Metric   GlobalUnitSystem = "Metric"
	Imperial GlobalUnitSystem = "Imperial"
)

type SystemUnits struct {
	Weight Unit
	Power  Unit
	Torque Unit
	Speed  Unit
}

var systemUnits = map[GlobalUnitSystem]SystemUnits{
	Metric:   {Weight: KG, Power: KW, Torque: NM, Speed: KPH},
	Imperial: {Weight: LBS, Power: HP, Torque: LBFT, Speed: MPH},
}

// ForGlobalSystem returns the units used for the given global unit system.
// It panics on an undefined system.
func ForGlobalSystem(s GlobalUnitSystem) SystemUnits {
	ret, ok := systemUnits[s]
	if !ok {
		panic(fmt.Sprintf("units: undefined unit system %q", string(s)))
	}
	return ret
}

// ParseGlobalUnitSystem accepts the system name case-insensitively.
func ParseGlobalUnitSystem(s string) (GlobalUnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q (use metric or imperial)", s)
}
