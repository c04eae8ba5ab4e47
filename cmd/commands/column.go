/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewColumnCmd() *cobra.Command {
	var columnCmdFlags struct {
		// fraction is the share of the row the column spans
		fraction float64

		// offset is the share of the row skipped before the column
		offset float64

		gutterLeft  float64
		gutterRight float64

		// center centers the column, ignoring offset
		center bool
	}

	columnCmd := &cobra.Command{
		Use:   "column [--fraction <fraction>] [--offset <fraction>] [--gutter-left <px>] [--gutter-right <px>] [--center]",
		Short: "Prints the declarations sizing a grid column",
		Long: `Prints the flex-basis, max-width and margins of a column spanning a fraction
of its row. Fractions are written as decimals, ratios or percentages: 0.5, 1/3, 25%.
Left and right gutters default to the horizontal gutter. Ex "subdivision column --fraction 1/3 --offset 1/3"`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c := file.Grid()
			spec := c.DefaultColumn()
			spec.Fraction = columnCmdFlags.fraction
			spec.Offset = columnCmdFlags.offset
			spec.Center = columnCmdFlags.center

			if cmd.Flags().Changed("gutter-left") {
				spec.GutterLeft = columnCmdFlags.gutterLeft
			}

			if cmd.Flags().Changed("gutter-right") {
				spec.GutterRight = columnCmdFlags.gutterRight
			}

			log.Debugf("Column %+v with gutters %v/%v", spec, c.GutterH(), c.GutterV())
			fmt.Fprint(cmd.OutOrStdout(), c.Column(spec))
			return nil
		},
	}

	columnCmd.Flags().VarP(newFractionValue(1, &columnCmdFlags.fraction), "fraction", "f", "share of the row width the column spans")
	columnCmd.Flags().VarP(newFractionValue(0, &columnCmdFlags.offset), "offset", "o", "share of the row width skipped before the column")
	columnCmd.Flags().Float64Var(&columnCmdFlags.gutterLeft, "gutter-left", 0, "left gutter in pixels (default horizontal gutter)")
	columnCmd.Flags().Float64Var(&columnCmdFlags.gutterRight, "gutter-right", 0, "right gutter in pixels (default horizontal gutter)")
	columnCmd.Flags().BoolVar(&columnCmdFlags.center, "center", false, "center the column in its row, ignoring --offset")

	return columnCmd
}
