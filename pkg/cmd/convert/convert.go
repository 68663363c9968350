package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/fmtune-formatter/log"
	"github.com/mpapenbr/fmtune-formatter/pkg/config"
	conv "github.com/mpapenbr/fmtune-formatter/pkg/convert"
	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "converts a value into its paired unit",
		Example: `  fmtune convert 2.1 --unit bar --decimals 2
  fmtune convert 10 --unit kgf/mm --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.OutOrStdout(), args[0], config.Unit, config.Decimals, config.Output)
		},
	}
	cmd.Flags().StringVar(&config.Unit,
		"unit",
		"",
		"unit of VALUE (see 'fmtune units')")
	cmd.Flags().IntVar(&config.Decimals,
		"decimals",
		2,
		"number of decimals")
	cmd.Flags().StringVar(&config.Output,
		"output",
		"text",
		"output format (text, json)")
	_ = cmd.MarkFlagRequired("unit")
	return cmd
}

// Result holds the representations of a single converted value.
type Result struct {
	Value    string
	Unit     units.Unit
	Quantity units.Quantity
	Values   []UnitValue // source unit first
}

type UnitValue struct {
	Unit  units.Unit
	Value string
}

// Compute converts value from unit into every known representation.
func Compute(value, unit string, decimals int) (*Result, error) {
	u := units.Unit(strings.ToLower(strings.TrimSpace(unit)))
	if !units.Valid(u) {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownUnit, unit)
	}
	if !conv.Parse(value).IsValue() {
		log.Default().Named("convert").Warn("value is not numeric, using 0",
			log.String("value", value))
	}
	all := conv.ConvertFrom(value, u)
	order := []units.Unit{u, units.Opposite(u)}
	if _, ok := all[units.Newtons]; ok {
		order = append(order, units.Newtons)
	}
	ret := &Result{Value: value, Unit: u, Quantity: units.QuantityOf(u)}
	for _, k := range order {
		ret.Values = append(ret.Values, UnitValue{Unit: k, Value: conv.Fixed(all[k], decimals)})
	}
	return ret, nil
}

// Run writes the conversion of value in the requested output format.
func Run(w io.Writer, value, unit string, decimals int, output string) error {
	res, err := Compute(value, unit, decimals)
	if err != nil {
		return err
	}
	switch output {
	case "text":
		for _, v := range res.Values {
			if _, err := fmt.Fprintf(w, "%s %s\n", v.Value, unitLabel(v.Unit)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		_, err := fmt.Fprintln(w, oj.JSON(res.toData(), &oj.Options{Indent: 2, Sort: true}))
		return err
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", output)
	}
}

func (r *Result) toData() map[string]any {
	values := map[string]any{}
	for _, v := range r.Values {
		values[string(v.Unit)] = v.Value
	}
	return map[string]any{
		"value":    r.Value,
		"unit":     string(r.Unit),
		"quantity": r.Quantity.String(),
		"values":   values,
	}
}

// the newtons basis is internal and has no registry entry
func unitLabel(u units.Unit) string {
	if u == units.Newtons {
		return "N/mm"
	}
	return units.Label(u)
}
