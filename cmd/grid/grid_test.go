/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/subdivision-css/subdivision/cmd/grid"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	t.Run("test defaults", func(t *testing.T) {
		c := grid.Default()
		assert.Equal(grid.DefaultGutter, c.GutterH())
		assert.Equal(grid.DefaultGutter, c.GutterV())
		assert.Equal(c.GutterH(), c.Gutter())
		assert.Equal(".grid", c.ContainerSelector())
		assert.Equal("*", c.ColumnSelector())
	})

	t.Run("test gutter seeds both gutters", func(t *testing.T) {
		c := grid.New(grid.Options{Gutter: grid.Float(20)})
		assert.Equal(20.0, c.GutterH())
		assert.Equal(20.0, c.GutterV())
	})

	t.Run("test independent gutters", func(t *testing.T) {
		c := grid.New(grid.Options{GutterH: grid.Float(20), GutterV: grid.Float(5)})
		assert.Equal(20.0, c.GutterH())
		assert.Equal(5.0, c.GutterV())
	})

	t.Run("test gutterH wins over gutter", func(t *testing.T) {
		c := grid.New(grid.Options{Gutter: grid.Float(30), GutterH: grid.Float(12)})
		assert.Equal(12.0, c.GutterH())
		assert.Equal(12.0, c.GutterV())
	})

	t.Run("test gutterV only", func(t *testing.T) {
		c := grid.New(grid.Options{Gutter: grid.Float(30), GutterV: grid.Float(4)})
		assert.Equal(30.0, c.GutterH())
		assert.Equal(4.0, c.GutterV())
	})

	t.Run("test zero gutter is not absent", func(t *testing.T) {
		c := grid.New(grid.Options{Gutter: grid.Float(0)})
		assert.Equal(0.0, c.GutterH())
		assert.Equal(0.0, c.GutterV())
	})

	t.Run("test selectors", func(t *testing.T) {
		c := grid.New(grid.Options{
			ContainerSelector: grid.String(".row"),
			ColumnSelector:    grid.String(".col"),
		})
		assert.Equal(".row", c.ContainerSelector())
		assert.Equal(".col", c.ColumnSelector())
	})
}

func TestColumn(t *testing.T) {
	assert := assert.New(t)
	c := grid.Default()

	t.Run("test default column has no net gutter adjustment", func(t *testing.T) {
		expected := "flex-basis: calc(100% - 10px);\n" +
			"max-width: calc(100% - 10px);\n" +
			"margin-right: 0px;\n" +
			"margin-left: 10px;\n"
		assert.Equal(expected, c.Column(c.DefaultColumn()))
		assert.Equal(expected, c.Columnf(1, 0, 10, 10, false))
	})

	t.Run("test centered column ignores offset", func(t *testing.T) {
		expected := "flex-basis: calc(50% - 10px);\n" +
			"max-width: calc(50% - 10px);\n" +
			"margin-right: 0px;\n" +
			"margin-left: 10px;\n" +
			"margin-left: calc(25% + 10px);\n" +
			"margin-right: calc(25% + 10px);\n"
		assert.Equal(expected, c.Columnf(0.5, 0, 10, 10, true))
		assert.Equal(expected, c.Columnf(0.5, 0.3, 10, 10, true))
	})

	t.Run("test offset column uses the left gutter", func(t *testing.T) {
		expected := "flex-basis: calc(33% - 20px);\n" +
			"max-width: calc(33% - 20px);\n" +
			"margin-right: 0px;\n" +
			"margin-left: 20px;\n" +
			"margin-left: calc(33% + 20px);\n"
		assert.Equal(expected, c.Columnf(1.0/3, 1.0/3, 20, 10, false))
	})

	t.Run("test right gutter override", func(t *testing.T) {
		out := c.Columnf(0.25, 0, 10, 30, false)
		assert.Contains(out, "flex-basis: calc(25% - 30px);")
		assert.Contains(out, "margin-right: 20px;")
	})

	t.Run("test out of range fractions are accepted", func(t *testing.T) {
		out := c.Columnf(-0.5, 0, 10, 10, false)
		assert.Contains(out, "flex-basis: calc(-50% - 10px);")

		out = c.Columnf(2, 0, 10, 10, false)
		assert.Contains(out, "max-width: calc(200% - 10px);")
	})

	t.Run("test block form", func(t *testing.T) {
		spec := c.DefaultColumn()
		spec.Fraction = 0.5
		spec.Offset = 0.25
		block := c.ColumnBlock(spec)

		want := []grid.Declaration{
			{Property: "flex-basis", Value: "calc(50% - 10px)"},
			{Property: "max-width", Value: "calc(50% - 10px)"},
			{Property: "margin-right", Value: "0px"},
			{Property: "margin-left", Value: "10px"},
			{Property: "margin-left", Value: "calc(25% + 10px)"},
		}
		if diff := cmp.Diff(want, block.Declarations); diff != "" {
			t.Errorf("ColumnBlock mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(block.Rules)
	})
}

func TestOffset(t *testing.T) {
	assert := assert.New(t)
	c := grid.New(grid.Options{Gutter: grid.Float(15)})

	for _, g := range []float64{0, 5, 15, 100} {
		assert.Equal("", c.Offset(0, g))
	}

	assert.Equal("margin-left: calc(25% + 15px);\n", c.Offset(0.25, 15))
	assert.Equal("margin-left: calc(33% + 4px);\n", c.Offset(0.3333, 4))
	assert.Equal("margin-left: calc(50% + 15px);\n", c.OffsetDefault(0.5))
	assert.True(c.OffsetBlock(0, 15).Empty())
}

func TestSnippets(t *testing.T) {
	assert := assert.New(t)
	c := grid.New(grid.Options{GutterH: grid.Float(20), GutterV: grid.Float(5)})

	t.Run("test stack and full bleed only depend on the horizontal gutter", func(t *testing.T) {
		other := grid.New(grid.Options{
			GutterH:           grid.Float(20),
			GutterV:           grid.Float(99),
			ContainerSelector: grid.String(".container"),
			ColumnSelector:    grid.String(".cell"),
		})

		assert.Equal("flex-basis: 100%;\nmax-width: 100%;\nmargin-left: 20px;\n", c.Stack())
		assert.Equal(c.Stack(), other.Stack())

		assert.Equal("flex-basis: 100%;\nmax-width: auto;\nmargin-left: -20px;\nmargin-right: -20px;\n", c.FullBleed())
		assert.Equal(c.FullBleed(), other.FullBleed())
	})

	t.Run("test center and uncenter", func(t *testing.T) {
		assert.Equal("max-width: calc((100% - 20px) * 0.5 - 20px);\nmargin: 0 auto;\n", c.Center(0.5))
		assert.Equal("max-width: none;\nmargin: 0;\n", c.Uncenter())
	})

	t.Run("test rows", func(t *testing.T) {
		expected := "display: block;\n" +
			"box-sizing: border-box;\n" +
			"margin-left: -20px;\n" +
			"margin-right: -20px;\n" +
			"padding-right: 20px;\n" +
			"> * {\n" +
			"  box-sizing: border-box;\n" +
			"  margin-left: 20px;\n" +
			"  margin-bottom: 20px;\n" +
			"}\n"
		assert.Equal(expected, c.Rows())
	})

	t.Run("test columns cancels vertical gutter on nested grids", func(t *testing.T) {
		expected := "display: flex;\n" +
			"flex-wrap: wrap;\n" +
			"box-sizing: border-box;\n" +
			"margin-left: -20px;\n" +
			"margin-right: -20px;\n" +
			"padding-right: 20px;\n" +
			"> * {\n" +
			"  flex: 1 1 0%;\n" +
			"  box-sizing: border-box;\n" +
			"  margin-left: 20px;\n" +
			"  margin-bottom: 5px;\n" +
			"  > .grid, > " + c.Grid().Selector() + " {\n" +
			"    margin-bottom: -5px;\n" +
			"  }\n" +
			"}\n"
		assert.Equal(expected, c.Columns())
	})

	t.Run("test inject scopes columns to the container", func(t *testing.T) {
		out := c.Inject()
		assert.True(strings.HasPrefix(out, ".grid {\n  display: flex;\n"))
		assert.True(strings.HasSuffix(out, "  }\n}\n"))
		assert.Len(c.InjectBlock().Rules, 1)
	})
}

func TestComponents(t *testing.T) {
	assert := assert.New(t)
	c := grid.Default()

	t.Run("test grid component", func(t *testing.T) {
		g := c.Grid()
		assert.Equal("Grid", g.Name)
		assert.Equal("div", g.Tag)
		assert.Regexp(`^sc-[0-9a-f]{8}$`, g.ID())
		assert.Equal("."+g.ID(), g.String())
		assert.Equal(c.Columns(), g.CSS(grid.Props{}))
		assert.Equal(g.ID(), c.Grid().ID())
	})

	t.Run("test ids depend on the configuration", func(t *testing.T) {
		other := grid.New(grid.Options{Gutter: grid.Float(11)})
		assert.NotEqual(c.Grid().ID(), other.Grid().ID())
		assert.NotEqual(c.Grid().ID(), c.Centered().ID())
	})

	t.Run("test centered component follows the fraction prop", func(t *testing.T) {
		centered := c.Centered()
		half := grid.Props{Fraction: 0.5}
		third := grid.Props{Fraction: 1.0 / 3}

		assert.Equal(c.Center(0.5), centered.CSS(half))
		assert.NotEqual(centered.DynamicClass(half), centered.DynamicClass(third))
		assert.Equal(centered.DynamicClass(half), centered.DynamicClass(half))
		assert.True(strings.HasPrefix(centered.ClassName(half), centered.ID()+" "+centered.ID()+"-"))
	})
}

func TestConcurrentUse(t *testing.T) {
	c := grid.New(grid.Options{Gutter: grid.Float(16)})
	expected := c.Columnf(0.5, 0.25, 16, 16, false)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Columnf(0.5, 0.25, 16, 16, false)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}
