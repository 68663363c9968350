package section

import (
	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/format"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const (
	suffixPercent = "%"
	suffixDegree  = "°"
)

// Tune returns the tune sections in report order. Sections marked not applicable are
// returned with NA set and without rows.
func Tune(t *model.TuneSettings, p Policy) []Table {
	return []Table{
		withUnit("tires", "Tires", &t.Tires, units.Pressure, p),
		gears(&t.Gears, p),
		alignment(&t.Alignment, p),
		antiRollBars(&t.AntiRollBars, p),
		withUnit("springs", "Springs", &t.Springs, units.SpringRate, p),
		withUnit("rideHeight", "Ride Height", &t.RideHeight, units.Length, p),
		damping(&t.Damping, p),
		geometry(&t.Geometry, p),
		withUnit("aero", "Aero", &t.Aero, units.Force, p),
		brakes(&t.Brakes, p),
		differential(&t.Differential, p),
		steeringWheel(&t.SteeringWheel, p),
	}
}

// cell returns the display value or "" if the policy hides it.
// A suffix is only appended to numeric values.
func cell(p Policy, key string, v model.Value, suffix string) (string, bool) {
	if !p.Visible(key, v) {
		return "", false
	}
	if suffix != "" && v.Parsed().IsValue() {
		return v.String() + suffix, true
	}
	return v.String(), true
}

// rowBuilder collects rows, a row is kept if at least one cell is visible
type rowBuilder struct {
	p    Policy
	rows []Row
}

type cellDef struct {
	key    string
	v      model.Value
	suffix string
}

func (b *rowBuilder) add(label string, defs ...cellDef) {
	cells := make([]string, len(defs))
	visible := false
	for i, s := range defs {
		c, ok := cell(b.p, s.key, s.v, s.suffix)
		cells[i] = c
		visible = visible || ok
	}
	if visible {
		b.rows = append(b.rows, Row{Label: label, Cells: cells})
	}
}

// frontRear adds a row with front and rear cells
func (b *rowBuilder) frontRear(label, key string, fr model.FrontAndRear[model.Value], suffix string) {
	b.add(label,
		cellDef{key + ".front", fr.Front, suffix},
		cellDef{key + ".rear", fr.Rear, suffix})
}

func naTable(key, title string, headers []string) Table {
	return Table{Key: "tune." + key, Title: title, NA: true, Headers: headers, Align: AlignRight}
}

func withUnit(
	key, title string,
	fr *model.FrontAndRearWithUnit,
	q units.Quantity,
	p Policy,
) Table {
	unit := fr.Unit
	if unit == "" {
		unit = model.DefaultUnit(q)
	}
	headers := format.FormatUnitHeaders(unit)
	if fr.NA {
		return naTable(key, title, headers[:])
	}
	rows := []Row{}
	for _, axle := range []struct {
		label string
		key   string
		v     model.Value
	}{
		{"Front", key + ".front", fr.Front},
		{"Rear", key + ".rear", fr.Rear},
	} {
		// text has no conversion, the row would be blank
		if !p.Visible(axle.key, axle.v) || !axle.v.Parsed().IsValue() {
			continue
		}
		values := format.FormatDisplay(string(axle.v), unit, false)
		rows = append(rows, Row{Label: axle.label, Cells: values[:]})
	}
	return Table{
		Key: "tune." + key, Title: title, Headers: headers[:], Align: AlignRight, Rows: rows,
	}
}

// gears renders the final drive and then each gear up to the first unset slot.
func gears(g *model.Gears, p Policy) Table {
	headers := []string{"Ratio"}
	if g.NA {
		return naTable("gears", "Gears", headers)
	}
	ratios := g.GearRatios()
	finalDrive, fdVisible := cell(p, "gears.finalDrive", g.FinalDrive(), "")
	if !fdVisible && len(ratios) == 0 {
		return Table{Key: "tune.gears", Title: "Gears", Headers: headers, Align: AlignRight}
	}
	rows := []Row{{Label: "Final Drive", Cells: []string{finalDrive}}}
	for i, r := range ratios {
		rows = append(rows, Row{Label: format.Ordinal(i + 1), Cells: []string{r.String()}})
	}
	return Table{Key: "tune.gears", Title: "Gears", Headers: headers, Align: AlignRight, Rows: rows}
}

var frontRearHeaders = []string{"Front", "Rear"}

func alignment(a *model.Alignment, p Policy) Table {
	if a.NA {
		return naTable("alignment", "Alignment", frontRearHeaders)
	}
	b := rowBuilder{p: p}
	b.frontRear("Camber", "alignment.camber", a.Camber, suffixDegree)
	b.frontRear("Toe", "alignment.toe", a.Toe, suffixDegree)
	b.add("Caster", cellDef{"alignment.caster", a.Caster, suffixDegree}, cellDef{})
	return Table{
		Key: "tune.alignment", Title: "Alignment", Headers: frontRearHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}

func antiRollBars(fr *model.FrontAndRear[model.Value], p Policy) Table {
	if fr.NA {
		return naTable("antiRollBars", "Anti-Roll Bars", frontRearHeaders)
	}
	b := rowBuilder{p: p}
	b.frontRear("Stiffness", "antiRollBars", *fr, "")
	return Table{
		Key: "tune.antiRollBars", Title: "Anti-Roll Bars", Headers: frontRearHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}

func damping(d *model.Damping, p Policy) Table {
	if d.NA {
		return naTable("damping", "Damping", frontRearHeaders)
	}
	b := rowBuilder{p: p}
	b.frontRear("Rebound", "damping.rebound", d.Rebound, "")
	b.frontRear("Bump", "damping.bump", d.Bump, "")
	return Table{
		Key: "tune.damping", Title: "Damping", Headers: frontRearHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}

func geometry(g *model.Geometry, p Policy) Table {
	if g.NA {
		return naTable("geometry", "Suspension Geometry", frontRearHeaders)
	}
	b := rowBuilder{p: p}
	b.frontRear("Roll Center", "geometry.rollCenter", g.RollCenter, "")
	b.frontRear("Anti-Geometry", "geometry.antiGeometry", g.AntiGeometry, suffixPercent)
	return Table{
		Key: "tune.geometry", Title: "Suspension Geometry", Headers: frontRearHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}

var valueHeaders = []string{"Value"}

func brakes(br *model.Brakes, p Policy) Table {
	if br.NA {
		return naTable("brakes", "Brakes", valueHeaders)
	}
	b := rowBuilder{p: p}
	b.add("Balance", cellDef{"brakes.balance", br.Balance, suffixPercent})
	b.add("Pressure", cellDef{"brakes.pressure", br.Pressure, suffixPercent})
	return Table{
		Key: "tune.brakes", Title: "Brakes", Headers: valueHeaders, Align: AlignRight, Rows: b.rows,
	}
}

func differential(d *model.Differential, p Policy) Table {
	if d.NA {
		return naTable("differential", "Differential", valueHeaders)
	}
	b := rowBuilder{p: p}
	b.add("Front Accel", cellDef{"differential.front.accel", d.Front.Accel, suffixPercent})
	b.add("Front Decel", cellDef{"differential.front.decel", d.Front.Decel, suffixPercent})
	b.add("Rear Accel", cellDef{"differential.rear.accel", d.Rear.Accel, suffixPercent})
	b.add("Rear Decel", cellDef{"differential.rear.decel", d.Rear.Decel, suffixPercent})
	b.add("Center Balance", cellDef{"differential.center", d.Center, suffixPercent})
	return Table{
		Key: "tune.differential", Title: "Differential", Headers: valueHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}

func steeringWheel(s *model.SteeringWheel, p Policy) Table {
	if s.NA {
		return naTable("steeringWheel", "Steering Wheel", valueHeaders)
	}
	b := rowBuilder{p: p}
	b.add("Steering Lock", cellDef{"steeringWheel.steeringLock", s.SteeringLock, suffixDegree})
	b.add("FFB Scale", cellDef{"steeringWheel.ffbScale", s.FFBScale, ""})
	b.add("Center Spring", cellDef{"steeringWheel.centerSpring", s.CenterSpring, ""})
	b.add("Vibration Scale", cellDef{"steeringWheel.vibrationScale", s.VibrationScale, ""})
	return Table{
		Key: "tune.steeringWheel", Title: "Steering Wheel", Headers: valueHeaders,
		Align: AlignRight, Rows: b.rows,
	}
}
