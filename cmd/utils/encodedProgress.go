/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package utils

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Progress is anything that can count finished work units,
// progressbar.ProgressBar included
type Progress interface {
	Add(num int) error
}

// EncodedProgress reports progress as machine readable log lines,
// for when subdivision is driven by other tools
type EncodedProgress struct {
	mu             sync.Mutex
	total          int64
	current        int
	currentPercent int
	instanceNo     int
	name           string
}

func NewEncodedProgress(max int64, instNo int, name string) *EncodedProgress {
	return &EncodedProgress{
		total:      max,
		instanceNo: instNo,
		name:       name,
	}
}

// Add counts num more finished units
func (p *EncodedProgress) Add(num int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current += num
	p.print()
	return nil
}

/* Encodes information to show progress when called by GUI or other tools
 * I: Instance number, connected to the name
 * F: Name of the stylesheet being built
 * T: Total number of breakpoints
 * P: Currently processed percentage
 * C: Currently processed breakpoints
 */
func (p *EncodedProgress) print() {
	if p.total <= 0 {
		return
	}

	newPercent := int(float64(p.current) / float64(p.total) * 100)
	if p.currentPercent != newPercent {
		if p.currentPercent == 0 {
			log.Infof("[I%d:F%q,T%d,P%d]", p.instanceNo, p.name, p.total, newPercent)
		} else {
			log.Infof("[I%d:P%d,C%d]", p.instanceNo, newPercent, p.current)
		}
		p.currentPercent = newPercent
	}
}
