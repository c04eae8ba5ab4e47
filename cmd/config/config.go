/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

// Package config reads grid configuration files.
//
// A file holds base grid options plus optional breakpoints, each breakpoint
// overriding some of the base options from a minimum viewport width:
//
//	gutter: 10
//	containerSelector: .grid
//	output: dist/grid.css
//	breakpoints:
//	  - name: tablet
//	    minWidth: 768
//	    gutter: 20
package config

import (
	"sort"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/grid"
	"github.com/subdivision-css/subdivision/cmd/stylesheet"
	"github.com/subdivision-css/subdivision/cmd/utils"
)

// BaseSheetName names the sheet built from the top level options
const BaseSheetName = "base"

// Breakpoint overrides grid options from MinWidth pixels on
type Breakpoint struct {
	Name     string  `mapstructure:"name"`
	MinWidth float64 `mapstructure:"minWidth"`

	grid.Options `mapstructure:",squash"`
}

// File is the decoded content of a configuration file
type File struct {
	grid.Options `mapstructure:",squash"`

	// Output is where "build" writes the stylesheet, stdout when empty
	Output string `mapstructure:"output"`

	// Components also emits the Grid component rules
	Components bool `mapstructure:"components"`

	Breakpoints []Breakpoint `mapstructure:"breakpoints"`
}

// Load reads the configuration file at path. Its format follows its
// extension: yaml, yml, json or toml.
func Load(path string) (*File, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// Decode decodes an already read viper instance
func Decode(v *viper.Viper) (*File, error) {
	file := &File{}
	if err := v.Unmarshal(file); err != nil {
		log.Errorf("could not decode \"%s\": %s", v.ConfigFileUsed(), err)
		return nil, errs.ErrInvalidConfig
	}

	if err := file.validate(); err != nil {
		return nil, err
	}

	return file, nil
}

// Watch loads path and calls onChange every time the file is written to.
// The first load is returned synchronously. The watch cannot be stopped and
// lasts for the life of the process.
func Watch(path string, onChange func(*File, error)) (*File, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}

	file, err := Decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(event fsnotify.Event) {
		log.Infof("\"%s\" changed", event.Name)
		onChange(Decode(v))
	})
	v.WatchConfig()

	return file, nil
}

func read(path string) (*viper.Viper, error) {
	if !utils.FileExists(path) {
		log.Errorf("\"%s\" does not exist", path)
		return nil, errs.ErrFileNotFound
	}

	log.Debugf("Reading configuration from \"%s\"", path)
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Error(err)
		return nil, errs.ErrInvalidConfig
	}

	return v, nil
}

func (f *File) validate() error {
	names := map[string]bool{BaseSheetName: true}
	for _, bp := range f.Breakpoints {
		if names[bp.Name] {
			log.Errorf("breakpoint \"%s\" is declared twice", bp.Name)
			return errs.ErrDuplicateBreakpoint
		}
		names[bp.Name] = true
	}
	return nil
}

// Overlay returns base with every option set in over replacing it.
// Setting Gutter in over discards the gutters inherited from base, so that
// the cascade restarts from the overriding gutter.
func Overlay(base, over grid.Options) grid.Options {
	result := base

	if over.Gutter != nil {
		result.Gutter = over.Gutter
		result.GutterH = nil
		result.GutterV = nil
	}

	if over.GutterH != nil {
		result.GutterH = over.GutterH
	}

	if over.GutterV != nil {
		result.GutterV = over.GutterV
	}

	if over.ContainerSelector != nil {
		result.ContainerSelector = over.ContainerSelector
	}

	if over.ColumnSelector != nil {
		result.ColumnSelector = over.ColumnSelector
	}

	return result
}

// Grid resolves the top level options
func (f *File) Grid() *grid.Config {
	return newGrid(BaseSheetName, f.Options)
}

// Sheets resolves the base options and every breakpoint into sheets,
// ordered by increasing minimum width
func (f *File) Sheets() []stylesheet.Sheet {
	sheets := []stylesheet.Sheet{{
		Name:       BaseSheetName,
		Grid:       f.Grid(),
		Components: f.Components,
	}}

	breakpoints := append([]Breakpoint{}, f.Breakpoints...)
	sort.SliceStable(breakpoints, func(i, j int) bool {
		return breakpoints[i].MinWidth < breakpoints[j].MinWidth
	})

	for _, bp := range breakpoints {
		sheets = append(sheets, stylesheet.Sheet{
			Name:       bp.Name,
			MinWidth:   bp.MinWidth,
			Grid:       newGrid(bp.Name, Overlay(f.Options, bp.Options)),
			Components: f.Components,
		})
	}

	return sheets
}

func newGrid(name string, opts grid.Options) *grid.Config {
	c := grid.New(opts)
	if c.GutterH() < 0 || c.GutterV() < 0 {
		log.WithFields(log.Fields{
			"sheet":   name,
			"gutterH": c.GutterH(),
			"gutterV": c.GutterV(),
		}).Warn("negative gutter, the generated CSS will be unusual")
	}
	return c
}
