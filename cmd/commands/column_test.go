/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands_test

import (
	"testing"

	errs "github.com/subdivision-css/subdivision/cmd/errors"
)

var columnCmdTests = []TestCase{
	{
		name: "test default column",
		args: []string{"column"},
		expectedStdout: []string{"flex-basis: calc(100% - 10px);\n" +
			"max-width: calc(100% - 10px);\n" +
			"margin-right: 0px;\n" +
			"margin-left: 10px;\n"},
		exactStdout: true,
	},
	{
		name:           "test help command",
		args:           []string{"help", "column"},
		expectedStdout: []string{"--gutter-left"},
	},
	{
		name: "test centered column",
		args: []string{"column", "--fraction", "1/2", "--offset", "0.3", "--center"},
		expectedStdout: []string{
			"flex-basis: calc(50% - 10px);",
			"margin-left: calc(25% + 10px);",
			"margin-right: calc(25% + 10px);",
		},
	},
	{
		name: "test offset column with left gutter",
		args: []string{"column", "-f", "1/3", "-o", "1/3", "--gutter-left", "20"},
		expectedStdout: []string{
			"flex-basis: calc(33% - 20px);",
			"margin-left: 20px;",
			"margin-left: calc(33% + 20px);",
		},
	},
	{
		name:           "test right gutter",
		args:           []string{"column", "--fraction", "25%", "--gutter-right", "30"},
		expectedStdout: []string{"max-width: calc(25% - 30px);", "margin-right: 20px;"},
	},
	{
		name:           "test gutter flag",
		args:           []string{"column", "--gutter", "20"},
		expectedStdout: []string{"flex-basis: calc(100% - 20px);", "margin-left: 20px;"},
	},
	{
		name:            "test bad fraction",
		args:            []string{"column", "--fraction", "half"},
		expectedErrText: errs.ErrInvalidFraction.Error(),
	},
}

func TestColumnCmd(t *testing.T) {
	runTests(t, columnCmdTests)

	path := writeConfig(t, "gutterH: 16\ngutterV: 4\n")
	runTests(t, []TestCase{
		{
			name:           "test gutters from configuration file",
			args:           []string{"column", "--config", path},
			expectedStdout: []string{"flex-basis: calc(100% - 16px);", "margin-left: 16px;"},
		},
		{
			name:           "test flags win over configuration file",
			args:           []string{"column", "--config", path, "--gutter-h", "8"},
			expectedStdout: []string{"flex-basis: calc(100% - 8px);"},
		},
	})
}
