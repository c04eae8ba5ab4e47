/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package utils

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
	"golang.org/x/term"
)

// FileExists checks if filePath is an actual file in the local file system
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// DirExists checks if dirPath is an actual directory in the local file system
func DirExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// EnsureDir recursevily creates a directory tree if it doesn't exist already
func EnsureDir(dirName string) error {
	log.Debugf("Ensuring \"%s\" directory exists", dirName)
	err := os.MkdirAll(dirName, 0755)
	if err != nil && !os.IsExist(err) {
		log.Error(err)
		return errs.ErrFailedCreatingDirectory
	}
	return nil
}

// WriteFile writes content to filePath, creating its parent directories.
// An existing file is only replaced when force is set.
func WriteFile(filePath string, content []byte, force bool) error {
	if FileExists(filePath) && !force {
		log.Errorf("\"%s\" already exists", filePath)
		return errs.ErrPathAlreadyExists
	}

	if DirExists(filePath) {
		log.Errorf("\"%s\" is a directory", filePath)
		return errs.ErrPathAlreadyExists
	}

	if err := EnsureDir(filepath.Dir(filePath)); err != nil {
		return err
	}

	log.Debugf("Writing %d bytes to \"%s\"", len(content), filePath)
	if err := os.WriteFile(filePath, content, 0644); err != nil { // #nosec
		log.Error(err)
		return errs.ErrFailedCreatingFile
	}

	return nil
}

// IsTerminalInteractive tells whether or not file is attached to a terminal
func IsTerminalInteractive(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// ExitOnError logs err and exits
func ExitOnError(err error) {
	if err != nil {
		log.Error(err.Error())
		os.Exit(-1)
	}
}
