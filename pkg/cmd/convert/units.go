package convert

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

func NewUnitsCmd() *cobra.Command {
	var system string
	cmd := &cobra.Command{
		Use:   "units",
		Short: "lists the supported units and their pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ListUnits(cmd.OutOrStdout(), system)
		},
	}
	cmd.Flags().StringVar(&system,
		"system",
		"",
		"show the units of a global unit system (metric, imperial) instead")
	return cmd
}

// ListUnits writes the unit pairs, or the units of a global system if one is given.
func ListUnits(w io.Writer, system string) error {
	if system != "" {
		s, err := units.ParseGlobalUnitSystem(system)
		if err != nil {
			return err
		}
		su := units.ForGlobalSystem(s)
		for _, row := range [][2]string{
			{"weight", units.Label(su.Weight)},
			{"power", units.Label(su.Power)},
			{"torque", units.Label(su.Torque)},
			{"speed", units.Label(su.Speed)},
		} {
			if _, err := fmt.Fprintf(w, "%-12s %s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, pair := range lo.Chunk(units.All(), 2) {
		if _, err := fmt.Fprintf(w, "%-12s %-8s %s\n",
			units.QuantityOf(pair[0]), pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}
