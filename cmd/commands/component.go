/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/grid"
	"github.com/subdivision-css/subdivision/cmd/stylesheet"
)

func NewComponentCmd() *cobra.Command {
	var fraction float64

	componentCmd := &cobra.Command{
		Use:   "component <grid|centered> [--fraction <fraction>]",
		Short: "Prints the class and rules of a styled component",
		Long: `Prints the class names to put on an element and the CSS rules styling it:
  - grid: a div laid out as a flex row of columns
  - centered: a div centered over --fraction of its parent`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c := file.Grid()

			var component *grid.Component
			switch args[0] {
			case "grid":
				component = c.Grid()
			case "centered":
				component = c.Centered()
			default:
				log.Errorf("\"%s\" is not a component", args[0])
				return errs.ErrUnknownComponent
			}

			props := grid.Props{Fraction: fraction}
			log.Debugf("Rendering <%s> %s with %+v", component.Tag, component.Name, props)

			fmt.Fprintf(cmd.OutOrStdout(), "<%s class=\"%s\">\n", component.Tag, component.ClassName(props))
			for _, rule := range stylesheet.ComponentRules(component, props) {
				fmt.Fprintln(cmd.OutOrStdout(), rule.String())
			}
			return nil
		},
	}

	componentCmd.Flags().VarP(newFractionValue(1, &fraction), "fraction", "f", "fraction prop of the component")

	return componentCmd
}
