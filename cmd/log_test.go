/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogFormatter(t *testing.T) {
	assert := assert.New(t)
	formatter := new(LogFormatter)

	out, err := formatter.Format(&log.Entry{Level: log.InfoLevel, Message: "Wrote 3 rules"})
	assert.Nil(err)
	assert.Equal("I: Wrote 3 rules\n", string(out))

	out, err = formatter.Format(&log.Entry{
		Level:   log.WarnLevel,
		Message: "negative gutter",
		Data:    log.Fields{"sheet": "tablet", "gutter": -4},
	})
	assert.Nil(err)
	assert.Equal("W: negative gutter gutter=-4 sheet=tablet\n", string(out))
}
