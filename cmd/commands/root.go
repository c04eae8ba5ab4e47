/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subdivision-css/subdivision/cmd/config"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/grid"
)

// Version is set at build time
var Version string

const License = "Apache License 2.0"

// All contains the constructors of every subdivision command
var All = []func() *cobra.Command{
	NewColumnCmd,
	NewOffsetCmd,
	NewSnippetCmd,
	NewComponentCmd,
	NewBuildCmd,
}

func printVersionAndLicense(file io.Writer) {
	fmt.Fprintf(file, "subdivision version %v\n", Version)
	fmt.Fprintf(file, "%v\n", License)
}

// NewCli builds the whole command tree
func NewCli() *cobra.Command {
	cobra.OnInitialize(initCobra)

	var version bool

	rootCmd := &cobra.Command{
		Use:           "subdivision",
		Short:         "This utility generates CSS for flexbox grids",
		Long:          "Prints grid fragments (columns, offsets, rows, centering) and builds responsive grid stylesheets from a configuration file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version {
				printVersionAndLicense(cmd.OutOrStdout())
				return nil
			}

			return cmd.Help()
		},
	}

	rootCmd.Flags().BoolVarP(&version, "version", "V", false, "Prints the version number of subdivision and exit")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Run subdivision silently, printing only error messages")
	rootCmd.PersistentFlags().BoolP("verbosiness", "v", false, "Sets verbosiness level: None (Errors + Info + Warnings), -v (all + Debugging). Specify \"-q\" for no messages")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Grid configuration file (yaml, json or toml). Defaults to SUBDIVISION_CONFIG environment variable")
	rootCmd.PersistentFlags().Float64("gutter", grid.DefaultGutter, "gutter in pixels, seeds both --gutter-h and --gutter-v")
	rootCmd.PersistentFlags().Float64("gutter-h", grid.DefaultGutter, "horizontal gutter in pixels")
	rootCmd.PersistentFlags().Float64("gutter-v", grid.DefaultGutter, "vertical gutter in pixels, defaults to the horizontal gutter")
	rootCmd.PersistentFlags().String("container", grid.DefaultContainerSelector, "CSS selector of the grid container")
	rootCmd.PersistentFlags().String("column", grid.DefaultColumnSelector, "CSS selector of the columns, relative to the container")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbosiness", rootCmd.PersistentFlags().Lookup("verbosiness"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	for _, newCmd := range All {
		rootCmd.AddCommand(newCmd())
	}

	return rootCmd
}

func initCobra() {
	viper.SetEnvPrefix("subdivision")
	viper.AutomaticEnv()
}

// configureLogging sets the log level out of -q/-v
func configureLogging(cmd *cobra.Command, args []string) error {
	verbosiness := viper.GetBool("verbosiness")
	quiet := viper.GetBool("quiet")
	if quiet && verbosiness {
		return errs.ErrBothQuietAndVerbose
	}

	log.SetLevel(log.InfoLevel)

	if quiet {
		log.SetLevel(log.ErrorLevel)
	}

	if verbosiness {
		log.SetLevel(log.DebugLevel)
	}

	return nil
}

// loadConfig reads the configuration file, if any, and applies the grid
// flags given on the command line over it
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	file := &config.File{}

	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	file.Options = config.Overlay(file.Options, flagOptions(cmd.Flags()))
	return file, nil
}

// flagOptions only picks the flags that were explicitly given
func flagOptions(flags *pflag.FlagSet) grid.Options {
	opts := grid.Options{}

	float := func(name string) *float64 {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			log.Debug(err)
			return nil
		}
		return &v
	}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			log.Debug(err)
			return nil
		}
		return &v
	}

	opts.Gutter = float("gutter")
	opts.GutterH = float("gutter-h")
	opts.GutterV = float("gutter-v")
	opts.ContainerSelector = str("container")
	opts.ColumnSelector = str("column")

	return opts
}
