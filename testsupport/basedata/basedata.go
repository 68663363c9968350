package basedata

import (
	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const SampleLink = "https://fmtune.example/t/abc123"

// MinimalSetup has identity and classification only, everything else is blank.
func MinimalSetup() *model.FMSetup {
	return &model.FMSetup{
		Year:  "2024",
		Make:  "Test",
		Model: "Car",
		Stats: model.Stats{PI: "700", Classification: "A"},
	}
}

// MinimalNASetup is MinimalSetup with every tune section marked not applicable.
func MinimalNASetup() *model.FMSetup {
	s := MinimalSetup()
	t := &s.Tune
	t.Tires.NA = true
	t.Gears.NA = true
	t.Alignment.NA = true
	t.AntiRollBars.NA = true
	t.Springs.NA = true
	t.RideHeight.NA = true
	t.Damping.NA = true
	t.Geometry.NA = true
	t.Aero.NA = true
	t.Brakes.NA = true
	t.Differential.NA = true
	t.SteeringWheel.NA = true
	return s
}

func frontRear(front, rear model.Value) model.FrontAndRear[model.Value] {
	return model.FrontAndRear[model.Value]{Front: front, Rear: rear}
}

func withUnit(front, rear model.Value, u units.Unit) model.FrontAndRearWithUnit {
	return model.FrontAndRearWithUnit{FrontAndRear: frontRear(front, rear), Unit: u}
}

// SampleSetup is a fully populated setup.
//
//nolint:funlen // test data
func SampleSetup() *model.FMSetup {
	return &model.FMSetup{
		Version:   "1.2.0",
		Year:      "1992",
		Make:      "Mazda",
		Model:     "RX-7",
		Author:    "apex",
		ShareCode: "123 456 789",
		Stats: model.Stats{
			Classification: "A",
			PI:             "700",
			Power:          "412",
			Torque:         "380",
			Weight:         "1210",
			FrontWeight:    "52",
		},
		Upgrades: model.PerformanceUpgrades{
			Conversions: model.Conversions{Engine: "Stock", Aspiration: "Turbo", BodyKit: ""},
			Engine:      model.EngineUpgrades{Camshaft: "Race", Flywheel: "None"},
			PlatformHandling: model.PlatformHandling{
				FrontArb: "Race", RearArb: "Race", WeightReduction: "Stock",
			},
			Tires: model.TireUpgrades{Compound: "Sport", FrontWidth: "245", RearWidth: "275"},
		},
		Tune: model.TuneSettings{
			Tires: withUnit("2.1", "2.05", units.Bar),
			Gears: model.Gears{Ratios: []model.Value{
				"3.50", "2.10", "1.40", "", "1.10", "", "", "", "", "", "",
			}},
			Alignment:    model.Alignment{Camber: frontRear("-1.5", "-1.0"), Caster: "5.5"},
			AntiRollBars: frontRear("20.5", "18"),
			Springs:      withUnit("10", "", units.KGFMM),
			RideHeight:   model.FrontAndRearWithUnit{Unit: units.CM, FrontAndRear: model.FrontAndRear[model.Value]{NA: true}},
			Damping:      model.Damping{Rebound: frontRear("9.1", "8.2"), Bump: frontRear("5", "4.5")},
			Brakes:       model.Brakes{Balance: "52", Pressure: "100"},
			Differential: model.Differential{
				FrontAndRear: model.FrontAndRear[model.DiffAxle]{Rear: model.DiffAxle{Accel: "65", Decel: "20"}},
				Center:       "50",
			},
			SteeringWheel: model.SteeringWheel{SteeringLock: "900", FFBScale: "85"},
		},
	}
}
