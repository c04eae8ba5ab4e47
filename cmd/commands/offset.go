/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewOffsetCmd() *cobra.Command {
	var gutterLeft float64

	offsetCmd := &cobra.Command{
		Use:   "offset <fraction> [--gutter-left <px>]",
		Short: "Prints the margin shifting a column by a fraction of its row",
		Long: `Prints the margin-left declaration shifting a column by a fraction of its row.
Nothing is printed for an offset of 0. Ex "subdivision offset 1/4"`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := ParseFraction(args[0])
			if err != nil {
				log.Errorf("\"%s\" is not a fraction", args[0])
				return err
			}

			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c := file.Grid()
			gutter := c.GutterH()
			if cmd.Flags().Changed("gutter-left") {
				gutter = gutterLeft
			}

			fmt.Fprint(cmd.OutOrStdout(), c.Offset(offset, gutter))
			return nil
		},
	}

	offsetCmd.Flags().Float64Var(&gutterLeft, "gutter-left", 0, "gutter added to the offset in pixels (default horizontal gutter)")

	return offsetCmd
}
