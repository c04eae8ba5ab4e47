/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package stylesheet

import (
	"context"
	"strconv"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	log "github.com/sirupsen/logrus"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/grid"
	"github.com/subdivision-css/subdivision/cmd/utils"
	"golang.org/x/sync/errgroup"
)

// Sheet is the part of a stylesheet generated for one breakpoint
type Sheet struct {
	Name string

	// MinWidth is the viewport width, in pixels, from which the sheet applies.
	// 0 means always.
	MinWidth float64

	Grid *grid.Config

	// Components also emits the rules of the Grid component class
	Components bool
}

// BuildOptions tunes Build
type BuildOptions struct {
	// Concurrency limits how many sheets render at once, 0 means no limit
	Concurrency int

	// Progress, when set, is advanced once per rendered sheet
	Progress utils.Progress
}

// Media wraps rules in a min-width media query
func Media(minWidth float64, rules []*css.Rule) *css.Rule {
	media := css.NewRule(css.AtRule)
	media.Name = "@media"
	media.Prelude = "(min-width: " + strconv.FormatFloat(minWidth, 'f', -1, 64) + "px)"

	for _, rule := range rules {
		rule.EmbedLevel = 1
	}
	media.Rules = rules

	return media
}

// ComponentRules returns the rules styling comp rendered with props,
// scoped to its dynamic class
func ComponentRules(comp *grid.Component, props grid.Props) []*css.Rule {
	return Flatten("."+comp.DynamicClass(props), comp.Block(props))
}

// Render returns the rules of a single sheet
func Render(sheet Sheet) []*css.Rule {
	rules := Flatten("", sheet.Grid.InjectBlock())

	if sheet.Components {
		gridComponent := sheet.Grid.Grid()
		rules = append(rules, Flatten(gridComponent.Selector(), gridComponent.Block(grid.Props{}))...)
	}

	if sheet.MinWidth > 0 {
		return []*css.Rule{Media(sheet.MinWidth, rules)}
	}
	return rules
}

// Build renders every sheet concurrently and assembles them, in order, into a
// single stylesheet
func Build(ctx context.Context, sheets []Sheet, opts BuildOptions) (*css.Stylesheet, error) {
	rendered := make([][]*css.Rule, len(sheets))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i := range sheets {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			log.Debugf("Rendering sheet \"%s\"", sheets[i].Name)
			rendered[i] = Render(sheets[i])

			if opts.Progress != nil {
				if err := opts.Progress.Add(1); err != nil {
					log.Debug(err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := css.NewStylesheet()
	for _, rules := range rendered {
		result.Rules = append(result.Rules, rules...)
	}

	return result, nil
}

// Validate parses text back as CSS
func Validate(text string) error {
	if _, err := parser.Parse(text); err != nil {
		log.Errorf("generated CSS does not parse: %s", err)
		return errs.ErrInvalidStylesheet
	}
	return nil
}
