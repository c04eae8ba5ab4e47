/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package commands

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
)

// ParseFraction reads a share of the row width written as a decimal ("0.5"),
// a ratio ("1/3") or a percentage ("25%")
func ParseFraction(text string) (float64, error) {
	text = strings.TrimSpace(text)

	if numerator, denominator, found := strings.Cut(text, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(numerator), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(denominator), 64)
		if errN != nil || errD != nil || d == 0 {
			log.Debugf("cannot read \"%s\" as a ratio", text)
			return 0, errs.ErrInvalidFraction
		}
		return n / d, nil
	}

	if percent, found := strings.CutSuffix(text, "%"); found {
		v, err := strconv.ParseFloat(strings.TrimSpace(percent), 64)
		if err != nil {
			log.Debugf("cannot read \"%s\" as a percentage", text)
			return 0, errs.ErrInvalidFraction
		}
		return v / 100, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		log.Debugf("cannot read \"%s\" as a number", text)
		return 0, errs.ErrInvalidFraction
	}
	return v, nil
}

// fractionValue is a pflag.Value accepting everything ParseFraction does
type fractionValue float64

func newFractionValue(val float64, p *float64) *fractionValue {
	*p = val
	return (*fractionValue)(p)
}

func (f *fractionValue) Set(text string) error {
	v, err := ParseFraction(text)
	if err != nil {
		return err
	}
	*f = fractionValue(v)
	return nil
}

func (f *fractionValue) Type() string {
	return "fraction"
}

func (f *fractionValue) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 64)
}
