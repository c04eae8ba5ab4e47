/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package main

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LogFormatter is subdivision's basic log formatter
type LogFormatter struct{}

// Format prints out logs like "I: some message", where the first letter indicates (I)NFO, (D)EBUG, (W)ARNING or (E)RROR.
// Fields, if any, follow the message as key=value pairs.
func (s *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	msg := fmt.Sprintf("%s: %s", level[0:1], entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		msg += fmt.Sprintf(" %s=%v", key, entry.Data[key])
	}

	return []byte(msg + "\n"), nil
}
