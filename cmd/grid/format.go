/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package grid

import (
	"math"
	"strconv"
)

// percentage formats d as a whole percent, e.g. 0.3333 -> "33%".
// Halves round away from zero and negative values keep their sign,
// so -0.003 renders as "-0%".
func percentage(d float64) string {
	v := d * 100
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + strconv.FormatFloat(math.Round(v), 'f', 0, 64) + "%"
}

// number prints the shortest decimal representation of v, 2.5 -> "2.5"
func number(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return number(v) + "px"
}

// negPx prefixes the pixel value with a minus sign without evaluating it
func negPx(v float64) string {
	return "-" + px(v)
}
