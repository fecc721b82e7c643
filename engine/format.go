package engine

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders a numeric result the way the TI-84 display does: values
// within 1e-10 of zero collapse to 0, small integral values print without a
// fraction, everything else uses prec significant digits.
func Format(v float64, prec int) string {
	if prec <= 0 {
		prec = 10
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	if math.Abs(v) < 1e-10 {
		v = 0
	}
	if math.Abs(v) < 1e4 && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.*g", prec, v)
}
