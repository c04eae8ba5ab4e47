/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid

import (
	"crypto/sha256"
	"fmt"
)

const (
	gridComponentName     = "Grid"
	centeredComponentName = "Centered"
)

// Props are the runtime properties a component is rendered with
type Props struct {
	Fraction float64
}

// Component is an element styled by a grid fragment.
// Its ID is stable for a given name and configuration.
type Component struct {
	Name string
	Tag  string

	id    string
	style func(Props) Block
}

// ID is the static class shared by every instance of the component
func (comp *Component) ID() string {
	return comp.id
}

// Selector returns the class selector of the component, e.g. ".sc-1a2b3c4d"
func (comp *Component) Selector() string {
	return "." + comp.id
}

func (comp *Component) String() string {
	return comp.Selector()
}

// Block returns the fragment styling the component for props
func (comp *Component) Block(props Props) Block {
	return comp.style(props)
}

// CSS returns the fragment styling the component for props
func (comp *Component) CSS(props Props) string {
	return comp.style(props).String()
}

// ClassName returns the classes to put on an element rendered with props:
// the static ID followed by a class derived from the generated CSS
func (comp *Component) ClassName(props Props) string {
	return comp.id + " " + comp.DynamicClass(props)
}

// DynamicClass is the class bound to the CSS generated for props
func (comp *Component) DynamicClass(props Props) string {
	return comp.id + "-" + shortHash(comp.CSS(props))
}

// Grid is a div laid out with Columns
func (c *Config) Grid() *Component {
	return &Component{
		Name: gridComponentName,
		Tag:  "div",
		id:   c.gridID,
		style: func(Props) Block {
			return c.ColumnsBlock()
		},
	}
}

// Centered is a div centered with Center(props.Fraction)
func (c *Config) Centered() *Component {
	return &Component{
		Name: centeredComponentName,
		Tag:  "div",
		id:   componentID(centeredComponentName, c),
		style: func(props Props) Block {
			return c.CenterBlock(props.Fraction)
		},
	}
}

func componentID(name string, c *Config) string {
	return "sc-" + shortHash(fmt.Sprintf("%s|%v|%v|%s|%s", name, c.gutterH, c.gutterV, c.containerSelector, c.columnSelector))
}

func shortHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum[:4])
}
