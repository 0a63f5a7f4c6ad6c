// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package xbdate provides a UTC-normalized date value with calendar
// arithmetic, precision-aware comparison and declarative date constraints.
//
// Dates are normalized to 12:00:00.000 UTC at construction by default so
// that day-level comparisons are stable against timezone skew of the input.
// Parsing is permissive: unparseable input produces an invalid Date rather
// than an error, and validity is checked with IsValid.
package xbdate

import "time"

// Date represents a single calendar instant, always held in UTC.
// Add and Subtract return new values; Set is the one operation that
// mutates the receiver in place. Date is not safe for concurrent use
// with Set.
type Date struct {
	t time.Time
}

type options struct {
	normalize bool
}

// Option configures the construction of a Date.
type Option func(*options)

// WithNormalize controls whether the time-of-day is forced to 12:00:00.000
// UTC at construction. Normalization is on by default.
func WithNormalize(normalize bool) Option {
	return func(o *options) { o.normalize = normalize }
}

func buildOptions(opts []Option) options {
	o := options{normalize: true}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Now returns a Date for the current moment.
func Now(opts ...Option) *Date {
	return FromTime(time.Now(), opts...)
}

// FromTime returns a Date wrapping the given instant converted to UTC.
// Use FromTime(other.Time()) to construct a Date from another Date's
// underlying instant. A zero time yields an invalid Date.
func FromTime(t time.Time, opts ...Option) *Date {
	if t.IsZero() {
		return &Date{}
	}
	o := buildOptions(opts)
	u := t.UTC()
	if o.normalize {
		u = time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
	}
	return &Date{t: u}
}

// FromMillis returns a Date for the given number of milliseconds since the
// Unix epoch.
func FromMillis(ms int64, opts ...Option) *Date {
	return FromTime(time.UnixMilli(ms), opts...)
}

// Time returns the underlying instant. time.Time is a value, so mutating
// operations on the Date do not affect previously returned instants.
func (d *Date) Time() time.Time {
	return d.t
}

// IsValid reports whether d holds a usable instant. Construction never
// fails; accessors on an invalid Date return the zero time's fields.
func (d *Date) IsValid() bool {
	return !d.t.IsZero()
}

// Year returns the UTC year.
func (d *Date) Year() int {
	return d.t.Year()
}

// Month returns the zero-based UTC month, 0 for January through 11 for
// December.
func (d *Date) Month() int {
	return int(d.t.Month()) - 1
}

// Day returns the UTC day of the month.
func (d *Date) Day() int {
	return d.t.Day()
}

// UnixMilli returns the instant as milliseconds since the Unix epoch.
func (d *Date) UnixMilli() int64 {
	return d.t.UnixMilli()
}

// Weekday returns the UTC day of the week, time.Sunday (0) through
// time.Saturday (6).
func (d *Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Hour returns the UTC hour, 12 for normalized dates.
func (d *Date) Hour() int {
	return d.t.Hour()
}

// Minute returns the UTC minute.
func (d *Date) Minute() int {
	return d.t.Minute()
}

// Second returns the UTC second.
func (d *Date) Second() int {
	return d.t.Second()
}

// Millisecond returns the UTC millisecond.
func (d *Date) Millisecond() int {
	return d.t.Nanosecond() / int(time.Millisecond)
}

// String returns the ISO-8601 UTC form of the instant,
// YYYY-MM-DDTHH:mm:ss.sssZ, or "Invalid Date" for an invalid Date.
func (d *Date) String() string {
	if !d.IsValid() {
		return "Invalid Date"
	}
	return d.t.Format("2006-01-02T15:04:05.000Z07:00")
}

func (d *Date) clone() *Date {
	return &Date{t: d.t}
}
