// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

import "time"

// Range is an inclusive range of dates, compared at day precision.
type Range struct {
	from, to *Date
}

// NewRange returns a Range spanning from and to inclusive. If the bounds
// are out of order they are swapped.
func NewRange(from, to *Date) Range {
	if to.Is("<", from) {
		from, to = to, from
	}
	return Range{from: from, to: to}
}

// From returns the start of the range.
func (r Range) From() *Date {
	return r.from
}

// To returns the end of the range.
func (r Range) To() *Date {
	return r.to
}

// Contains reports whether d lies within the range at day precision,
// inclusive on both ends.
func (r Range) Contains(d *Date) bool {
	k := d.key(PrecisionDay)
	return k >= r.from.key(PrecisionDay) && k <= r.to.key(PrecisionDay)
}

func midnight(d *Date) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the number of dates in the range, counting both ends.
func (r Range) Days() int {
	return int(midnight(r.to).Sub(midnight(r.from)).Hours()/24) + 1
}

// Dates returns an iterator that yields each date in the range in calendar
// order. Yielded dates are normalized to noon UTC.
func (r Range) Dates() func(yield func(*Date) bool) {
	return func(yield func(*Date) bool) {
		if !r.from.IsValid() || !r.to.IsValid() {
			return
		}
		last := r.to.key(PrecisionDay)
		for d := FromTime(r.from.t); d.key(PrecisionDay) <= last; d = d.Add(Fields{UnitDay: 1}) {
			if !yield(d) {
				return
			}
		}
	}
}

// DatesMatching returns an iterator that yields each date in the range that
// satisfies any of the given constraints.
func (r Range) DatesMatching(constraints ...Constraint) func(yield func(*Date) bool) {
	return func(yield func(*Date) bool) {
		if !r.from.IsValid() || !r.to.IsValid() {
			return
		}
		last := r.to.key(PrecisionDay)
		for d := FromTime(r.from.t); d.key(PrecisionDay) <= last; d = d.Add(Fields{UnitDay: 1}) {
			if !d.Matches(constraints...) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
