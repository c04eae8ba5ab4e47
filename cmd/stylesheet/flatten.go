/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

// Package stylesheet turns nested grid fragments into plain CSS rules.
package stylesheet

import (
	"strings"

	"github.com/aymerick/douceur/css"
	log "github.com/sirupsen/logrus"
	"github.com/subdivision-css/subdivision/cmd/grid"
)

// Flatten turns block, scoped to selector, into flat qualified rules.
// Nested selectors are appended to their parents after a space unless they
// reference the parent with "&". Selector lists expand to every combination.
func Flatten(selector string, block grid.Block) []*css.Rule {
	rules := []*css.Rule{}
	flatten(splitSelectors(selector), block, &rules)
	return rules
}

func flatten(parents []string, block grid.Block, rules *[]*css.Rule) {
	if len(block.Declarations) > 0 {
		if len(parents) == 0 {
			log.Debugf("Dropping %d declarations without selector", len(block.Declarations))
		} else {
			*rules = append(*rules, newRule(parents, block.Declarations))
		}
	}

	for _, nested := range block.Rules {
		flatten(combine(parents, nested.Selector), nested.Block, rules)
	}
}

func combine(parents []string, selector string) []string {
	children := splitSelectors(selector)
	if len(parents) == 0 {
		return children
	}

	combined := make([]string, 0, len(parents)*len(children))
	for _, parent := range parents {
		for _, child := range children {
			if strings.Contains(child, "&") {
				combined = append(combined, strings.ReplaceAll(child, "&", parent))
			} else {
				combined = append(combined, parent+" "+child)
			}
		}
	}
	return combined
}

func splitSelectors(selector string) []string {
	selectors := []string{}
	for _, s := range strings.Split(selector, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func newRule(selectors []string, declarations []grid.Declaration) *css.Rule {
	rule := css.NewRule(css.QualifiedRule)
	rule.Selectors = selectors
	rule.Prelude = strings.Join(selectors, ", ")

	for _, d := range declarations {
		decl := css.NewDeclaration()
		decl.Property = d.Property
		decl.Value = d.Value
		rule.Declarations = append(rule.Declarations, decl)
	}

	return rule
}
