/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid

import (
	"strings"
)

// Declaration is a single "property: value" pair
type Declaration struct {
	Property string
	Value    string
}

// Rule is a block nested under a relative selector, e.g. "> *"
type Rule struct {
	Selector string
	Block    Block
}

// Block holds the declarations of a CSS fragment followed by its nested rules.
// Properties may repeat; as in CSS, the last one wins.
type Block struct {
	Declarations []Declaration
	Rules        []Rule
}

// Declare appends a declaration and returns the block for chaining
func (b Block) Declare(property, value string) Block {
	b.Declarations = append(b.Declarations, Declaration{Property: property, Value: value})
	return b
}

// Nest appends a nested rule
func (b Block) Nest(selector string, nested Block) Block {
	b.Rules = append(b.Rules, Rule{Selector: selector, Block: nested})
	return b
}

// Merge appends the declarations and rules of other after the ones of b
func (b Block) Merge(other Block) Block {
	b.Declarations = append(b.Declarations, other.Declarations...)
	b.Rules = append(b.Rules, other.Rules...)
	return b
}

// Empty tells whether the block renders to nothing
func (b Block) Empty() bool {
	return len(b.Declarations) == 0 && len(b.Rules) == 0
}

// String renders the block in nested form, one declaration per line
func (b Block) String() string {
	var sb strings.Builder
	b.write(&sb, "")
	return sb.String()
}

func (b Block) write(sb *strings.Builder, indent string) {
	for _, decl := range b.Declarations {
		sb.WriteString(indent)
		sb.WriteString(decl.Property)
		sb.WriteString(": ")
		sb.WriteString(decl.Value)
		sb.WriteString(";\n")
	}

	for _, rule := range b.Rules {
		sb.WriteString(indent)
		sb.WriteString(rule.Selector)
		sb.WriteString(" {\n")
		rule.Block.write(sb, indent+"  ")
		sb.WriteString(indent)
		sb.WriteString("}\n")
	}
}
