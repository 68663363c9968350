package convert

import (
	"bytes"
	"testing"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

func TestRunText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		unit     string
		decimals int
		want     string
	}{
		{name: "pressure", value: "2.1", unit: "bar", decimals: 2, want: "2.10 bar\n30.46 psi\n"},
		{name: "unit case", value: "2.1", unit: " BAR ", decimals: 1, want: "2.1 bar\n30.5 psi\n"},
		{name: "spring rate", value: "10", unit: "kgf/mm", decimals: 2, want: "10.00 kgf/mm\n559.97 lbs/in\n98.07 N/mm\n"},
		{name: "power", value: "300", unit: "kw", decimals: 0, want: "300 kW\n402 hp\n"},
		{name: "not numeric", value: "abc", unit: "psi", decimals: 0, want: "0 psi\n0 bar\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Run(&buf, tt.value, tt.unit, tt.decimals, "text"))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, "10", "kgf/mm", 2, "json"))

	data, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	assert.Equal(t, "spring-rate", jp.MustParseString("$.quantity").First(data))
	assert.Equal(t, "kgf/mm", jp.MustParseString("$.unit").First(data))

	values, ok := jp.MustParseString("$.values").First(data).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"kgf/mm": "10.00",
		"lbs/in": "559.97",
		"n/mm":   "98.07",
	}, values)
}

func TestRunErrors(t *testing.T) {
	err := Run(&bytes.Buffer{}, "1", "atm", 2, "text")
	assert.ErrorIs(t, err, model.ErrUnknownUnit)

	// the newtons basis is not a user facing unit
	err = Run(&bytes.Buffer{}, "1", "n/mm", 2, "text")
	assert.ErrorIs(t, err, model.ErrUnknownUnit)

	err = Run(&bytes.Buffer{}, "1", "bar", 2, "xml")
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	res, err := Compute("120", "lbf", 0)
	require.NoError(t, err)
	assert.Equal(t, units.Force, res.Quantity)
	assert.Equal(t, []UnitValue{
		{Unit: units.LBF, Value: "120"},
		{Unit: units.KGF, Value: "54"},
	}, res.Values)
}

func TestListUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ListUnits(&buf, ""))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, len(units.All())/2)
	assert.Equal(t, "pressure     bar      psi", string(lines[0]))

	buf.Reset()
	require.NoError(t, ListUnits(&buf, "imperial"))
	assert.Equal(t, "weight       lbs\npower        hp\ntorque       lb-ft\nspeed        mph\n", buf.String())

	assert.Error(t, ListUnits(&bytes.Buffer{}, "si"))
}
