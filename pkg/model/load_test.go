//nolint:lll // test data
package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const sampleYaml = `
version: 1.1.0
year: 2024
make: Test
model: Car
stats:
  classification: A
  pi: 700
  power: 412.5
upgrades:
  platformHandling:
    frontArb: Race
tune:
  tires:
    front: 2.1
    rear: "2.05"
    unit: BAR
  gears:
    ratios: [3.5, 2.1, 1.4, "", "", "", "", "", "", "", ""]
  springs:
    front: 10
    rear: 11
  rideHeight:
    na: true
  differential:
    front:
      accel: 50
    center: 50
`

func TestLoad(t *testing.T) {
	s, err := model.Load(strings.NewReader(sampleYaml))
	require.NoError(t, err)

	assert.Equal(t, "2024 Test Car", s.Title())
	assert.Equal(t, "A 700", s.Stats.ClassLabel())
	assert.Equal(t, model.Value("412.5"), s.Stats.Power)
	assert.Equal(t, model.Value("Race"), s.Upgrades.PlatformHandling.FrontArb)
	assert.Equal(t, model.Value("2.1"), s.Tune.Tires.Front)
	assert.Equal(t, units.Bar, s.Tune.Tires.Unit)
	assert.Equal(t, units.KGFMM, s.Tune.Springs.Unit, "default unit")
	assert.True(t, s.Tune.RideHeight.NA)
	assert.Equal(t, model.Value("3.5"), s.Tune.Gears.FinalDrive())
	assert.Equal(t, []model.Value{"2.1", "1.4"}, s.Tune.Gears.GearRatios())
	assert.Equal(t, model.Value("50"), s.Tune.Differential.Front.Accel)
	assert.Equal(t, model.Value("50"), s.Tune.Differential.Center)
}

func TestLoadJSON(t *testing.T) {
	doc := `{"year": 2023, "make": "Nissan", "model": "GT-R", "stats": {"pi": 800, "classification": "S1"}, "tune": {"aero": {"front": null, "rear": 150, "unit": "lbf"}}}`
	s, err := model.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "2023 Nissan GT-R", s.Title())
	assert.Equal(t, "S1 800", s.Stats.ClassLabel())
	assert.True(t, s.Tune.Aero.Front.IsBlank())
	assert.Equal(t, 150.0, s.Tune.Aero.Rear.Float())
	assert.Equal(t, units.LBF, s.Tune.Aero.Unit)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "unknown unit", doc: "tune:\n  tires:\n    unit: atm\n", wantErr: model.ErrUnknownUnit},
		{name: "unit of other quantity", doc: "tune:\n  springs:\n    unit: psi\n", wantErr: model.ErrUnitMismatch},
		{name: "newer major version", doc: "version: 2.0.0\n", wantErr: model.ErrUnsupportedVersion},
		{name: "not a value", doc: "year: [1, 2]\n"},
		{name: "empty", doc: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckFormatVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "", wantErr: false},
		{version: "1.0.0", wantErr: false},
		{version: "v1.2.0", wantErr: false},
		{version: "1.9.3", wantErr: false},
		{version: "0.9.0", wantErr: true},
		{version: "2.0.0", wantErr: true},
		{version: "latest", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := model.CheckFormatVersion(tt.version)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnsupportedVersion)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValueSentinels(t *testing.T) {
	for _, v := range []model.Value{"", "  ", "N/A", "n/a", "Stock", "STOCK", "None", " none "} {
		assert.True(t, v.IsUnset(), "value %q", v)
	}
	for _, v := range []model.Value{"0", "Race", "Stocker", "50"} {
		assert.False(t, v.IsUnset(), "value %q", v)
	}
	assert.Equal(t, 0.0, model.Value("abc").Float())
	assert.False(t, model.Value("abc").Parsed().IsValue())
}

func TestGearRatiosCapacity(t *testing.T) {
	ratios := make([]model.Value, 14)
	for i := range ratios {
		ratios[i] = "1.0"
	}
	g := model.Gears{Ratios: ratios}
	assert.Len(t, g.GearRatios(), model.GearSlots-1)
}

func TestGearRatiosStopAtSentinel(t *testing.T) {
	tests := []struct {
		name   string
		ratios []model.Value
		want   []model.Value
	}{
		{name: "blank", ratios: []model.Value{"3.5", "2.1", "", "1.2"}, want: []model.Value{"2.1"}},
		{name: "n/a", ratios: []model.Value{"3.5", "2.1", "N/A", "1.2"}, want: []model.Value{"2.1"}},
		{name: "stock", ratios: []model.Value{"3.5", "stock", "1.8"}, want: []model.Value{}},
		{name: "zero is a value", ratios: []model.Value{"3.5", "2.1", "0"}, want: []model.Value{"2.1", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Gears{Ratios: tt.ratios}.GearRatios())
		})
	}
}

func TestUpgradeGroupsOrder(t *testing.T) {
	groups := model.PerformanceUpgrades{}.Groups()
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{
		"conversions", "fuelAir", "engine", "platformHandling",
		"drivetrain", "tires", "wheels", "aeroAppearance",
	}, keys)
	assert.Equal(t, "frontArb", groups[3].Fields[2].Key)
}
