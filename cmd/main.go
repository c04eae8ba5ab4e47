/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/subdivision-css/subdivision/cmd/commands"
	"github.com/subdivision-css/subdivision/cmd/utils"
)

func main() {
	cmd := commands.NewCli()
	utils.ExitOnError(cmd.Execute())
}

func init() {
	// Generated CSS goes to stdout, keep logs out of it
	log.SetOutput(os.Stderr)
	log.SetFormatter(new(LogFormatter))
	log.SetLevel(log.InfoLevel)
}
