package units

import "fmt"

// Quantity identifies the physical quantity a unit measures.
type Quantity int

const (
	Pressure Quantity = iota
	Length
	Force
	SpringRate
	Speed
	Weight
	Power
	Torque
)

func (q Quantity) String() string {
	switch q {
	case Pressure:
		return "pressure"
	case Length:
		return "length"
	case Force:
		return "force"
	case SpringRate:
		return "spring-rate"
	case Speed:
		return "speed"
	case Weight:
		return "weight"
	case Power:
		return "power"
	case Torque:
		return "torque"
	}
	return fmt.Sprintf("quantity(%d)", int(q))
}

// Unit is a concrete measurement unit. The string value is used in setup documents.
type Unit string

const (
	Bar   Unit = "bar"
	PSI   Unit = "psi"
	CM    Unit = "cm"
	Inch  Unit = "in"
	KGF   Unit = "kgf"
	LBF   Unit = "lbf"
	KGFMM Unit = "kgf/mm"
	LBSIN Unit = "lbs/in"
	KPH   Unit = "kph"
	MPH   Unit = "mph"
	KG    Unit = "kg"
	LBS   Unit = "lbs"
	KW    Unit = "kw"
	HP    Unit = "hp"
	NM    Unit = "nm"
	LBFT  Unit = "lbft"

	// Newtons is the canonical spring rate basis (N/mm). It is never shown to the user
	// and has no opposite.
	Newtons Unit = "n/mm"
)

type unitInfo struct {
	quantity Quantity
	label    string
	opposite Unit
}

// registry is read-only after package initialization
var registry = map[Unit]unitInfo{
	Bar:   {Pressure, "bar", PSI},
	PSI:   {Pressure, "psi", Bar},
	CM:    {Length, "cm", Inch},
	Inch:  {Length, "in", CM},
	KGF:   {Force, "kgf", LBF},
	LBF:   {Force, "lbf", KGF},
	KGFMM: {SpringRate, "kgf/mm", LBSIN},
	LBSIN: {SpringRate, "lbs/in", KGFMM},
	KPH:   {Speed, "km/h", MPH},
	MPH:   {Speed, "mph", KPH},
	KG:    {Weight, "kg", LBS},
	LBS:   {Weight, "lbs", KG},
	KW:    {Power, "kW", HP},
	HP:    {Power, "hp", KW},
	NM:    {Torque, "N·m", LBFT},
	LBFT:  {Torque, "lb-ft", NM},
}

// ordered list for listings, pairs are adjacent
var allUnits = []Unit{
	Bar, PSI, CM, Inch, KGF, LBF, KGFMM, LBSIN, KPH, MPH, KG, LBS, KW, HP, NM, LBFT,
}

func lookup(u Unit) unitInfo {
	info, ok := registry[u]
	if !ok {
		panic(fmt.Sprintf("units: undefined unit %q", string(u)))
	}
	return info
}

// Valid reports whether u is a user facing unit known to the registry.
func Valid(u Unit) bool {
	_, ok := registry[u]
	return ok
}

// Opposite returns the paired unit of the same quantity.
// It panics if u is not a defined unit.
func Opposite(u Unit) Unit {
	return lookup(u).opposite
}

// Label returns the display label of u.
func Label(u Unit) string {
	return lookup(u).label
}

// QuantityOf returns the physical quantity measured by u.
func QuantityOf(u Unit) Quantity {
	return lookup(u).quantity
}

// All returns every user facing unit, paired units next to each other.
func All() []Unit {
	ret := make([]Unit, len(allUnits))
	copy(ret, allUnits)
	return ret
}
