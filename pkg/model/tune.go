package model

import "github.com/mpapenbr/fmtune-formatter/pkg/units"

// GearSlots is the capacity of Gears.Ratios: final drive plus ten gears.
const GearSlots = 11

// FrontAndRear holds a setting which differs between the axles.
type FrontAndRear[T any] struct {
	Front T    `yaml:"front"`
	Rear  T    `yaml:"rear"`
	NA    bool `yaml:"na"` // not applicable
}

// FrontAndRearWithUnit is a front/rear value pair entered in Unit.
type FrontAndRearWithUnit struct {
	FrontAndRear[Value] `yaml:",inline"`
	Unit                units.Unit `yaml:"unit"`
}

type TuneSettings struct {
	Tires         FrontAndRearWithUnit `yaml:"tires"`
	Gears         Gears                `yaml:"gears"`
	Alignment     Alignment            `yaml:"alignment"`
	AntiRollBars  FrontAndRear[Value]  `yaml:"antiRollBars"`
	Springs       FrontAndRearWithUnit `yaml:"springs"`
	RideHeight    FrontAndRearWithUnit `yaml:"rideHeight"`
	Damping       Damping              `yaml:"damping"`
	Geometry      Geometry             `yaml:"geometry"`
	Aero          FrontAndRearWithUnit `yaml:"aero"`
	Brakes        Brakes               `yaml:"brakes"`
	Differential  Differential         `yaml:"differential"`
	SteeringWheel SteeringWheel        `yaml:"steeringWheel"`
}

// Gears holds the final drive at index 0 followed by the gear ratios.
// The slots are filled from the start, the first empty slot ends the sequence.
type Gears struct {
	Ratios []Value `yaml:"ratios"`
	NA     bool    `yaml:"na"`
}

// FinalDrive returns the final drive ratio.
func (g Gears) FinalDrive() Value {
	if len(g.Ratios) == 0 {
		return ""
	}
	return g.Ratios[0]
}

// GearRatios returns the ratios of 1st, 2nd, ... up to (excluding) the first slot
// which is blank or a sentinel (N/A, Stock, None).
func (g Gears) GearRatios() []Value {
	ret := []Value{}
	for i := 1; i < len(g.Ratios) && i < GearSlots; i++ {
		if g.Ratios[i].IsUnset() {
			break
		}
		ret = append(ret, g.Ratios[i])
	}
	return ret
}

type Alignment struct {
	Camber FrontAndRear[Value] `yaml:"camber"`
	Toe    FrontAndRear[Value] `yaml:"toe"`
	Caster Value               `yaml:"caster"` // front only
	NA     bool                `yaml:"na"`
}

type Damping struct {
	Rebound FrontAndRear[Value] `yaml:"rebound"`
	Bump    FrontAndRear[Value] `yaml:"bump"`
	NA      bool                `yaml:"na"`
}

type Geometry struct {
	RollCenter   FrontAndRear[Value] `yaml:"rollCenter"`   // roll center height offset
	AntiGeometry FrontAndRear[Value] `yaml:"antiGeometry"` // percent
	NA           bool                `yaml:"na"`
}

type Brakes struct {
	Balance  Value `yaml:"balance"`  // percent front
	Pressure Value `yaml:"pressure"` // percent
	NA       bool  `yaml:"na"`
}

type DiffAxle struct {
	Accel Value `yaml:"accel"`
	Decel Value `yaml:"decel"`
}

type Differential struct {
	FrontAndRear[DiffAxle] `yaml:",inline"`
	Center                 Value `yaml:"center"` // balance in percent rear
}

type SteeringWheel struct {
	SteeringLock   Value `yaml:"steeringLock"`
	FFBScale       Value `yaml:"ffbScale"`
	CenterSpring   Value `yaml:"centerSpring"`
	VibrationScale Value `yaml:"vibrationScale"`
	NA             bool  `yaml:"na"`
}
