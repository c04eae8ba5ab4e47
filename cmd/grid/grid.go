/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

// Package grid computes the CSS fragments of a flexbox grid: column widths,
// gutters, offsets, centering and full-bleed rows.
package grid

const (
	// DefaultGutter is the gutter, in pixels, used when none is configured
	DefaultGutter = 10.0

	// DefaultContainerSelector matches the grid container
	DefaultContainerSelector = ".grid"

	// DefaultColumnSelector matches the direct children of a grid container
	DefaultColumnSelector = "*"
)

// Options is the construction input of a Config. Every field is optional,
// nil meaning "not supplied".
type Options struct {
	// Gutter seeds both GutterH and GutterV when they are not supplied
	Gutter *float64 `mapstructure:"gutter"`

	// GutterH is the horizontal gutter in pixels
	GutterH *float64 `mapstructure:"gutterH"`

	// GutterV is the vertical gutter in pixels
	GutterV *float64 `mapstructure:"gutterV"`

	ContainerSelector *string `mapstructure:"containerSelector"`
	ColumnSelector    *string `mapstructure:"columnSelector"`
}

// Float returns a pointer to v, handy for filling Options
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s, handy for filling Options
func String(s string) *string {
	return &s
}

// Config holds a resolved, immutable grid configuration.
// It is safe for concurrent use.
type Config struct {
	gutterH           float64
	gutterV           float64
	containerSelector string
	columnSelector    string

	// gridID is the class of the Grid component, referenced by Columns
	gridID string
}

// New resolves opts into a Config.
// The gutters cascade in a fixed order: GutterH falls back to Gutter (then to
// DefaultGutter), and GutterV falls back to the resolved GutterH.
func New(opts Options) *Config {
	gutterH := DefaultGutter
	switch {
	case opts.GutterH != nil:
		gutterH = *opts.GutterH
	case opts.Gutter != nil:
		gutterH = *opts.Gutter
	}

	gutterV := gutterH
	if opts.GutterV != nil {
		gutterV = *opts.GutterV
	}

	c := &Config{
		gutterH:           gutterH,
		gutterV:           gutterV,
		containerSelector: DefaultContainerSelector,
		columnSelector:    DefaultColumnSelector,
	}

	if opts.ContainerSelector != nil {
		c.containerSelector = *opts.ContainerSelector
	}

	if opts.ColumnSelector != nil {
		c.columnSelector = *opts.ColumnSelector
	}

	c.gridID = componentID(gridComponentName, c)
	return c
}

// Default returns a Config built with no options at all
func Default() *Config {
	return New(Options{})
}

// GutterH is the horizontal gutter in pixels
func (c *Config) GutterH() float64 {
	return c.gutterH
}

// GutterV is the vertical gutter in pixels
func (c *Config) GutterV() float64 {
	return c.gutterV
}

// Gutter is an alias of GutterH
func (c *Config) Gutter() float64 {
	return c.gutterH
}

// ContainerSelector is the CSS selector of the grid container
func (c *Config) ContainerSelector() string {
	return c.containerSelector
}

// ColumnSelector is the CSS selector of the columns, relative to the container
func (c *Config) ColumnSelector() string {
	return c.columnSelector
}
