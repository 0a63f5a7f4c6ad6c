// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

import "time"

// Constraint describes a condition a Date may satisfy: a single date, an
// inclusive range, membership in a list, a weekday/weekend rule or an
// arbitrary predicate. Each constraint kind is a distinct type, so
// resolution is a method dispatch rather than runtime shape probing and
// every constraint value has exactly one meaning.
type Constraint interface {
	Match(d *Date) bool
}

// Predicate adapts a function to a Constraint. It is invoked directly with
// the candidate Date and its result returned unchanged.
type Predicate func(d *Date) bool

// Match implements Constraint.
func (p Predicate) Match(d *Date) bool {
	return p(d)
}

type singleDate struct {
	date *Date
}

// On returns a Constraint matching dates equal to the given date at day
// precision; the time-of-day of either side is ignored.
func On(date *Date) Constraint {
	return singleDate{date: date}
}

func (c singleDate) Match(d *Date) bool {
	return d.Is("=", c.date)
}

type between struct {
	r Range
}

// Between returns a Constraint matching dates that lie within [start, end]
// at day precision, inclusive on both ends. start is assumed to be no later
// than end.
func Between(start, end *Date) Constraint {
	return between{r: NewRange(start, end)}
}

func (c between) Match(d *Date) bool {
	return c.r.Contains(d)
}

type oneOf struct {
	dates []*Date
}

// OneOf returns a Constraint matching dates equal to any of the given dates
// at day precision.
func OneOf(dates ...*Date) Constraint {
	return oneOf{dates: dates}
}

func (c oneOf) Match(d *Date) bool {
	for _, date := range c.dates {
		if d.Is("=", date) {
			return true
		}
	}
	return false
}

type weekdays struct{}

// Weekdays returns a Constraint matching Monday through Friday.
func Weekdays() Constraint {
	return weekdays{}
}

func (weekdays) Match(d *Date) bool {
	wd := d.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

type weekends struct{}

// Weekends returns a Constraint matching Saturday and Sunday.
func Weekends() Constraint {
	return weekends{}
}

func (weekends) Match(d *Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Matches reports whether d satisfies any of the given constraints. With no
// constraints it returns false. Each constraint is evaluated against a copy
// of d that preserves its instant exactly, so a predicate that mutates its
// argument cannot alter the receiver.
func (d *Date) Matches(constraints ...Constraint) bool {
	if len(constraints) == 0 {
		return false
	}
	candidate := FromTime(d.t, WithNormalize(false))
	for _, c := range constraints {
		if c != nil && c.Match(candidate) {
			return true
		}
	}
	return false
}
