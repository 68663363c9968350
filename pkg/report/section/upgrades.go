package section

import (
	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/format"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

var upgradeHeaders = []string{"Upgrade"}

// Upgrades returns one table per upgrade group. Fields keep their group order.
func Upgrades(u *model.PerformanceUpgrades, p Policy) []Table {
	groups := u.Groups()
	ret := make([]Table, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, UpgradeGroup(g, p))
	}
	return ret
}

// UpgradeGroup builds the table of a single upgrade group.
func UpgradeGroup(g model.UpgradeGroup, p Policy) Table {
	b := rowBuilder{p: p}
	for _, f := range g.Fields {
		b.add(format.Label(f.Key), cellDef{key: g.Key + "." + f.Key, v: f.Value})
	}
	return Table{
		Key: "upgrades." + g.Key, Title: g.Title, Headers: upgradeHeaders,
		Align: AlignLeft, Rows: b.rows,
	}
}

// Stats returns the statistics table. Values carry the units of the global unit system.
// Classification and PI are not part of the table.
func Stats(s *model.Stats, system units.GlobalUnitSystem, p Policy) Table {
	su := units.ForGlobalSystem(system)
	speed := units.Label(su.Speed)
	b := rowBuilder{p: p}
	b.add("Power", cellDef{"stats.power", s.Power, " " + units.Label(su.Power)})
	b.add("Torque", cellDef{"stats.torque", s.Torque, " " + units.Label(su.Torque)})
	b.add("Weight", cellDef{"stats.weight", s.Weight, " " + units.Label(su.Weight)})
	b.add("Front Weight", cellDef{"stats.frontWeight", s.FrontWeight, suffixPercent})
	b.add("Top Speed", cellDef{"stats.topSpeed", s.TopSpeed, " " + speed})
	b.add("0-60 mph", cellDef{"stats.zeroToSixty", s.ZeroToSixty, " s"})
	b.add("0-100 km/h", cellDef{"stats.zeroToHundred", s.ZeroToHundred, " s"})
	return Table{
		Key: "stats", Title: "Stats", Headers: valueHeaders, Align: AlignRight, Rows: b.rows,
	}
}
