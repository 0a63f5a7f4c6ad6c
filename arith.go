// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

import "time"

// Unit names a calendar field.
type Unit string

const (
	UnitYear  Unit = "year"
	UnitMonth Unit = "month"
	UnitDay   Unit = "day"
)

// unitOrder fixes the application order for arithmetic so that results
// never depend on map iteration order.
var unitOrder = []Unit{UnitYear, UnitMonth, UnitDay}

// Fields is a partial mapping of calendar fields to integer values. Absent
// fields default to a zero increment for Add and Subtract, and to the
// receiver's current values for Set. Month values are zero-based, matching
// Date.Month.
type Fields map[Unit]int

// Add returns a new Date with each given amount added to the corresponding
// calendar field. Units are applied independently and sequentially in the
// order year, month, day; each step recomputes the calendar fields with
// overflow normalization, so adding one day to Dec 31 rolls into Jan 1 of
// the following year. The receiver is never modified: every step operates
// on an independently owned instant.
func (d *Date) Add(summands Fields) *Date {
	out := d.clone()
	if !out.IsValid() {
		return out
	}
	for _, unit := range unitOrder {
		n, ok := summands[unit]
		if !ok {
			continue
		}
		switch unit {
		case UnitYear:
			out.t = out.t.AddDate(n, 0, 0)
		case UnitMonth:
			out.t = out.t.AddDate(0, n, 0)
		case UnitDay:
			out.t = out.t.AddDate(0, 0, n)
		}
	}
	return out
}

// Subtract returns a new Date with each given amount subtracted from the
// corresponding calendar field. It negates each amount and delegates to Add.
func (d *Date) Subtract(subtrahends Fields) *Date {
	negated := make(Fields, len(subtrahends))
	for unit, n := range subtrahends {
		negated[unit] = -n
	}
	return d.Add(negated)
}

// Set replaces the given calendar fields on the receiver, leaving omitted
// fields and the time-of-day untouched. Out-of-range values roll over:
// Set(Fields{UnitMonth: 13}) lands in February of the following year.
// Unlike Add and Subtract, Set mutates the receiver in place and returns it
// to allow chaining; callers sharing the receiver will observe the change.
// A Set on an invalid Date leaves it invalid.
func (d *Date) Set(values Fields) *Date {
	if !d.IsValid() {
		return d
	}
	year, month, day := d.t.Year(), int(d.t.Month())-1, d.t.Day()
	if v, ok := values[UnitYear]; ok {
		year = v
	}
	if v, ok := values[UnitMonth]; ok {
		month = v
	}
	if v, ok := values[UnitDay]; ok {
		day = v
	}
	d.t = time.Date(year, time.Month(month+1), day,
		d.t.Hour(), d.t.Minute(), d.t.Second(), d.t.Nanosecond(), time.UTC)
	return d
}
