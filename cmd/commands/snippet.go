/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/grid"
	"github.com/subdivision-css/subdivision/cmd/stylesheet"
)

// snippets maps snippet names to the fragment they print
var snippets = map[string]func(c *grid.Config, fraction float64) grid.Block{
	"stack":      func(c *grid.Config, _ float64) grid.Block { return c.StackBlock() },
	"full-bleed": func(c *grid.Config, _ float64) grid.Block { return c.FullBleedBlock() },
	"center":     func(c *grid.Config, fraction float64) grid.Block { return c.CenterBlock(fraction) },
	"uncenter":   func(c *grid.Config, _ float64) grid.Block { return c.UncenterBlock() },
	"rows":       func(c *grid.Config, _ float64) grid.Block { return c.RowsBlock() },
	"columns":    func(c *grid.Config, _ float64) grid.Block { return c.ColumnsBlock() },
	"inject":     func(c *grid.Config, _ float64) grid.Block { return c.InjectBlock() },
}

func snippetNames() []string {
	names := make([]string, 0, len(snippets))
	for name := range snippets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewSnippetCmd() *cobra.Command {
	var snippetCmdFlags struct {
		// fraction is only used by "center"
		fraction float64

		// flat prints plain CSS rules instead of nested declarations
		flat bool
	}

	snippetCmd := &cobra.Command{
		Use:   "snippet <" + strings.Join(snippetNames(), "|") + "> [--fraction <fraction>] [--flat]",
		Short: "Prints a fixed grid fragment",
		Long: `Prints one of the fixed grid fragments:
  - stack: a column spanning the whole row
  - full-bleed: a column overflowing the container's side gutters
  - center/uncenter: centers an element over --fraction of its parent
  - rows/columns: the container laying its children out vertically or as a flex row
  - inject: columns scoped to the container selector
With --flat the fragment is printed as plain CSS rules scoped to the container selector.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, ok := snippets[args[0]]
			if !ok {
				log.Errorf("\"%s\" is not a snippet, pick one of %s", args[0], strings.Join(snippetNames(), ", "))
				return errs.ErrUnknownSnippet
			}

			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c := file.Grid()
			block := snippet(c, snippetCmdFlags.fraction)

			if !snippetCmdFlags.flat {
				fmt.Fprint(cmd.OutOrStdout(), block.String())
				return nil
			}

			selector := c.ContainerSelector()
			if args[0] == "inject" {
				selector = ""
			}

			for _, rule := range stylesheet.Flatten(selector, block) {
				fmt.Fprintln(cmd.OutOrStdout(), rule.String())
			}
			return nil
		},
	}

	snippetCmd.Flags().VarP(newFractionValue(1, &snippetCmdFlags.fraction), "fraction", "f", "share of the parent width, used by \"center\"")
	snippetCmd.Flags().BoolVar(&snippetCmdFlags.flat, "flat", false, "print plain CSS rules scoped to the container selector")

	return snippetCmd
}
