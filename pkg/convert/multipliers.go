package convert

// Multipliers holds the constants used by all conversions.
type Multipliers struct {
	Pressure    float64 // bar per psi
	Length      float64 // in per cm
	Force       float64 // kgf per lbf, also kg per lbs
	Speed       float64 // mph per kph
	SpringKGFMM float64 // kgf/mm per N/mm
	SpringLBSIN float64 // lbs/in per N/cm
	Gravity     float64 // m/s²
	Power       float64 // kW per hp
	Torque      float64 // N·m per lb-ft
}

// the lbs/in constant is given per N/cm, the newtons basis is N/mm
const springLBSINScale = 10

// process wide multiplier table, read through Table
var table = Multipliers{
	Pressure:    0.0689475728,
	Length:      0.39370078740214,
	Force:       0.45359236844386,
	Speed:       0.621371,
	SpringKGFMM: 0.1019716212978,
	SpringLBSIN: 0.57101471743224,
	Gravity:     9.80665,
	Power:       0.745699872,
	Torque:      1.3558179483,
}

// Table returns a copy of the multiplier table.
func Table() Multipliers {
	return table
}
