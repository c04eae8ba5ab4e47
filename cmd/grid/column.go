/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid

// ColumnSpec describes the shape of a column.
// Use Config.DefaultColumn to start from the config's defaults.
type ColumnSpec struct {
	// Fraction is the share of the row width, 1 being the whole row
	Fraction float64

	// Offset is the share of the row width skipped before the column
	Offset float64

	GutterLeft  float64
	GutterRight float64

	// Center centers the column in its row, Offset is then ignored
	Center bool
}

// DefaultColumn returns a full width, non offset column using the
// horizontal gutter on both sides
func (c *Config) DefaultColumn() ColumnSpec {
	return ColumnSpec{
		Fraction:    1,
		Offset:      0,
		GutterLeft:  c.gutterH,
		GutterRight: c.gutterH,
		Center:      false,
	}
}

// Column returns the declarations sizing a flex column
func (c *Config) Column(spec ColumnSpec) string {
	return c.ColumnBlock(spec).String()
}

// Columnf is Column with positional arguments
func (c *Config) Columnf(fraction, offset, gutterLeft, gutterRight float64, center bool) string {
	return c.Column(ColumnSpec{
		Fraction:    fraction,
		Offset:      offset,
		GutterLeft:  gutterLeft,
		GutterRight: gutterRight,
		Center:      center,
	})
}

// ColumnBlock is the structured form of Column
func (c *Config) ColumnBlock(spec ColumnSpec) Block {
	gutterWidth := spec.GutterLeft + spec.GutterRight - c.gutterH
	basis := "calc(" + percentage(spec.Fraction) + " - " + px(gutterWidth) + ")"

	block := Block{}.
		Declare("flex-basis", basis).
		Declare("max-width", basis).
		Declare("margin-right", px(spec.GutterRight-c.gutterH)).
		Declare("margin-left", px(spec.GutterLeft))

	if spec.Center {
		margin := c.getOffset((1-spec.Fraction)/2, c.gutterH)
		return block.
			Declare("margin-left", margin).
			Declare("margin-right", margin)
	}

	return block.Merge(c.OffsetBlock(spec.Offset, spec.GutterLeft))
}

// Offset returns a margin-left declaration shifting a column by offset of the
// row width. It is empty when offset is exactly 0.
func (c *Config) Offset(offset, gutter float64) string {
	return c.OffsetBlock(offset, gutter).String()
}

// OffsetDefault is Offset using the horizontal gutter
func (c *Config) OffsetDefault(offset float64) string {
	return c.Offset(offset, c.gutterH)
}

// OffsetBlock is the structured form of Offset
func (c *Config) OffsetBlock(offset, gutter float64) Block {
	if offset == 0 {
		return Block{}
	}
	return Block{}.Declare("margin-left", c.getOffset(offset, gutter))
}

func (c *Config) getOffset(offset, gutter float64) string {
	return "calc(" + percentage(offset) + " + " + px(gutter) + ")"
}
