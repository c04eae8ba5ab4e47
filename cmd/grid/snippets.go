/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid

// Stack makes a column span the whole row
func (c *Config) Stack() string {
	return c.StackBlock().String()
}

func (c *Config) StackBlock() Block {
	return Block{}.
		Declare("flex-basis", "100%").
		Declare("max-width", "100%").
		Declare("margin-left", px(c.gutterH))
}

// FullBleed stretches a column over the container's side gutters
func (c *Config) FullBleed() string {
	return c.FullBleedBlock().String()
}

func (c *Config) FullBleedBlock() Block {
	return Block{}.
		Declare("flex-basis", "100%").
		Declare("max-width", "auto").
		Declare("margin-left", negPx(c.gutterH)).
		Declare("margin-right", negPx(c.gutterH))
}

// Center constrains an element to fraction of its parent and centers it
func (c *Config) Center(fraction float64) string {
	return c.CenterBlock(fraction).String()
}

func (c *Config) CenterBlock(fraction float64) Block {
	g := px(c.gutterH)
	return Block{}.
		Declare("max-width", "calc((100% - "+g+") * "+number(fraction)+" - "+g+")").
		Declare("margin", "0 auto")
}

// Uncenter reverts Center
func (c *Config) Uncenter() string {
	return c.UncenterBlock().String()
}

func (c *Config) UncenterBlock() Block {
	return Block{}.
		Declare("max-width", "none").
		Declare("margin", "0")
}

// Rows lays the columns out vertically
func (c *Config) Rows() string {
	return c.RowsBlock().String()
}

func (c *Config) RowsBlock() Block {
	column := Block{}.
		Declare("box-sizing", "border-box").
		Declare("margin-left", px(c.gutterH)).
		Declare("margin-bottom", px(c.gutterH))

	return Block{}.
		Declare("display", "block").
		Declare("box-sizing", "border-box").
		Declare("margin-left", negPx(c.gutterH)).
		Declare("margin-right", negPx(c.gutterH)).
		Declare("padding-right", px(c.gutterH)).
		Nest("> "+c.columnSelector, column)
}

// Columns lays the columns out as a wrapping flex row.
// Grids nested in a column cancel their own vertical gutter.
func (c *Config) Columns() string {
	return c.ColumnsBlock().String()
}

func (c *Config) ColumnsBlock() Block {
	nested := Block{}.
		Declare("margin-bottom", negPx(c.gutterV))

	column := Block{}.
		Declare("flex", "1 1 0%").
		Declare("box-sizing", "border-box").
		Declare("margin-left", px(c.gutterH)).
		Declare("margin-bottom", px(c.gutterV)).
		Nest("> "+c.containerSelector+", > ."+c.gridID, nested)

	return Block{}.
		Declare("display", "flex").
		Declare("flex-wrap", "wrap").
		Declare("box-sizing", "border-box").
		Declare("margin-left", negPx(c.gutterH)).
		Declare("margin-right", negPx(c.gutterH)).
		Declare("padding-right", px(c.gutterH)).
		Nest("> "+c.columnSelector, column)
}

// Inject scopes Columns to the container selector, for stylesheets that are
// not attached to a component
func (c *Config) Inject() string {
	return c.InjectBlock().String()
}

func (c *Config) InjectBlock() Block {
	return Block{}.Nest(c.containerSelector, c.ColumnsBlock())
}
