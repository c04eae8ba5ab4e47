/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package errors

import (
	"errors"
)

// Is returns true if err is, or wraps, target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

var (
	// Errors related to configuration
	ErrInvalidConfig       = errors.New("invalid configuration file: it should be a YAML, JSON or TOML document with grid options")
	ErrInvalidFraction     = errors.New("bad fraction: it should be a decimal number like 0.5 or a ratio like 1/3")
	ErrDuplicateBreakpoint = errors.New("breakpoint names should be unique")
	ErrBothQuietAndVerbose = errors.New("both \"-q\" and \"-v\" were specified, please pick only one verbosiness option")

	// Errors related to generated output
	ErrUnknownSnippet    = errors.New("unknown snippet: it should be one of stack, full-bleed, center, uncenter, rows, columns or inject")
	ErrUnknownComponent  = errors.New("unknown component: it should be either grid or centered")
	ErrInvalidStylesheet = errors.New("generated stylesheet could not be parsed back")

	// Errors related to file system
	ErrFailedCreatingFile      = errors.New("failed to create a local file")
	ErrFailedCreatingDirectory = errors.New("fail to create directory")
	ErrFileNotFound            = errors.New("file not found")
	ErrPathAlreadyExists       = errors.New("path already exists, use the flag \"-f/--force\" to overwrite it")

	// Cmdline errors
	ErrIncorrectCmdArgs = errors.New("incorrect setup of command line arguments")

	// Error/Flag to detect when a user has requested early termination
	ErrTerminatedByUser = errors.New("terminated by user request")
)
