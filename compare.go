// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

// Precision is the calendar granularity at which two dates are compared;
// fields finer than the precision are ignored.
type Precision string

const (
	PrecisionYear  Precision = "year"
	PrecisionMonth Precision = "month"
	PrecisionDay   Precision = "day"
)

// comparators maps the supported comparison operators to integer
// comparisons.
var comparators = map[string]func(a, b int) bool{
	">=": func(a, b int) bool { return a >= b },
	">":  func(a, b int) bool { return a > b },
	"=":  func(a, b int) bool { return a == b },
	"<":  func(a, b int) bool { return a < b },
	"<=": func(a, b int) bool { return a <= b },
}

// key returns the zero-padded YYYYMMDD concatenation of the UTC calendar
// fields truncated to the given precision, as an integer. The padded
// concatenation is monotonic with calendar order at the same precision, so
// precision-limited comparison reduces to a single integer comparison.
func (d *Date) key(p Precision) int {
	switch p {
	case PrecisionYear:
		return d.t.Year()
	case PrecisionMonth:
		return d.t.Year()*100 + int(d.t.Month())
	default:
		return d.t.Year()*10000 + int(d.t.Month())*100 + d.t.Day()
	}
}

// Is compares d with other at the given precision, or at day precision if
// none is supplied. op is one of ">=", ">", "=", "<" or "<="; any other
// operator is treated as strict equality.
func (d *Date) Is(op string, other *Date, precision ...Precision) bool {
	p := PrecisionDay
	if len(precision) > 0 {
		p = precision[0]
	}
	cmp, ok := comparators[op]
	if !ok {
		cmp = comparators["="]
	}
	return cmp(d.key(p), other.key(p))
}
