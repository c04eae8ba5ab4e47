/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subdivision-css/subdivision/cmd/config"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"github.com/subdivision-css/subdivision/cmd/stylesheet"
	"github.com/subdivision-css/subdivision/cmd/utils"
)

type buildOptions struct {
	// output is the stylesheet path, stdout when empty
	output string

	// force overwrites an existing output
	force bool

	// encodedProgress reports encoded progress when used by other tools
	encodedProgress bool

	// watch rebuilds every time the configuration file changes
	watch bool
}

func NewBuildCmd() *cobra.Command {
	var buildCmdFlags buildOptions

	buildCmd := &cobra.Command{
		Use:   "build [--config <file>] [--output <file>] [--force] [--watch]",
		Short: "Builds a grid stylesheet",
		Long: `Builds a plain CSS stylesheet with the grid rules of the configuration and of
each of its breakpoints, wrapped in min-width media queries. The output path defaults
to the "output" key of the configuration file, then to stdout.
With --watch the stylesheet is rebuilt every time the configuration file changes,
until interrupted.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts := buildCmdFlags
			if opts.output == "" {
				opts.output = file.Output
			}

			if err := buildStylesheet(cmd.Context(), cmd.OutOrStdout(), file, opts); err != nil {
				return err
			}

			if !opts.watch {
				return nil
			}

			return watchStylesheet(cmd, viper.GetString("config"), opts)
		},
	}

	buildCmd.Flags().StringVarP(&buildCmdFlags.output, "output", "o", "", "path of the generated stylesheet")
	buildCmd.Flags().BoolVarP(&buildCmdFlags.force, "force", "f", false, "overwrite the output if it exists")
	buildCmd.Flags().BoolVarP(&buildCmdFlags.encodedProgress, "encoded-progress", "E", false, "Reports encoded progress when used by other tools")
	buildCmd.Flags().BoolVarP(&buildCmdFlags.watch, "watch", "w", false, "rebuild when the configuration file changes")
	buildCmd.Flags().IntP("concurrency", "j", 0, "number of breakpoints rendered at once, 0 for no limit")
	_ = viper.BindPFlag("concurrency", buildCmd.Flags().Lookup("concurrency"))

	return buildCmd
}

func buildStylesheet(ctx context.Context, stdout io.Writer, file *config.File, opts buildOptions) error {
	sheets := file.Sheets()

	name := opts.output
	if name == "" {
		name = "stdout"
	}

	sheet, err := stylesheet.Build(ctx, sheets, stylesheet.BuildOptions{
		Concurrency: viper.GetInt("concurrency"),
		Progress:    newProgress(len(sheets), name, opts),
	})
	if err != nil {
		return err
	}

	text := sheet.String() + "\n"
	if err := stylesheet.Validate(text); err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(stdout, text)
		return nil
	}

	if err := utils.WriteFile(opts.output, []byte(text), opts.force); err != nil {
		return err
	}

	log.Infof("Wrote %d rules for %d sheets to \"%s\"", len(sheet.Rules), len(sheets), opts.output)
	return nil
}

// watchStylesheet rebuilds the stylesheet on every change of path until the
// command context ends. A signal ends it with errs.ErrTerminatedByUser.
func watchStylesheet(cmd *cobra.Command, path string, opts buildOptions) error {
	if path == "" {
		log.Error("--watch needs a configuration file, use -c/--config")
		return errs.ErrIncorrectCmdArgs
	}

	ctx, stop := utils.WatchSignals(cmd.Context())
	defer stop()

	overrides := flagOptions(cmd.Flags())
	opts.force = true

	_, err := config.Watch(path, func(file *config.File, err error) {
		if err != nil {
			log.Errorf("Keeping previous stylesheet: %s", err)
			return
		}

		file.Options = config.Overlay(file.Options, overrides)
		if opts.output == "" {
			opts.output = file.Output
		}

		if err := buildStylesheet(ctx, cmd.OutOrStdout(), file, opts); err != nil {
			log.Errorf("Rebuild failed: %s", err)
		}
	})
	if err != nil {
		return err
	}

	log.Infof("Watching \"%s\", press Ctrl+C to stop", path)
	<-ctx.Done()
	log.Info("Stopped watching")

	return context.Cause(ctx)
}

// newProgress reports per breakpoint progress when it is useful
func newProgress(total int, name string, opts buildOptions) utils.Progress {
	if opts.encodedProgress {
		return utils.NewEncodedProgress(int64(total), 0, name)
	}

	if opts.output != "" && log.GetLevel() >= log.InfoLevel && utils.IsTerminalInteractive(os.Stderr) {
		return progressbar.Default(int64(total), "I:")
	}

	return nil
}
