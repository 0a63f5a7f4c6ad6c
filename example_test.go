// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate_test

import (
	"fmt"
	"time"

	xbdate "github.com/welingtonms/xb-date"
)

func ExampleParse() {
	fmt.Println(xbdate.Parse("2024-03-15T23:45:00-03:00"))
	fmt.Println(xbdate.Parse("2024-03-15T23:45:00-03:00", xbdate.WithNormalize(false)))
	// Output:
	// 2024-03-16T12:00:00.000Z
	// 2024-03-16T02:45:00.000Z
}

func ExampleDate_Add() {
	d := xbdate.Parse("2024-12-31")
	fmt.Println(d.Add(xbdate.Fields{xbdate.UnitDay: 1}))
	fmt.Println(d)
	// Output:
	// 2025-01-01T12:00:00.000Z
	// 2024-12-31T12:00:00.000Z
}

func ExampleDate_Set() {
	d := xbdate.Parse("2024-03-15")
	d.Set(xbdate.Fields{xbdate.UnitMonth: 13})
	fmt.Println(d)
	// Output:
	// 2025-02-15T12:00:00.000Z
}

func ExampleDate_Is() {
	a := xbdate.Parse("2024-03-15")
	b := xbdate.Parse("2024-03-31")
	fmt.Println(a.Is("<", b))
	fmt.Println(a.Is("=", b, xbdate.PrecisionMonth))
	// Output:
	// true
	// true
}

func ExampleDate_Matches() {
	d := xbdate.Parse("2024-03-15")
	fmt.Println(d.Matches(
		xbdate.Between(xbdate.Parse("2024-01-01"), xbdate.Parse("2024-01-31")),
		xbdate.Predicate(func(d *xbdate.Date) bool {
			return d.Weekday() == time.Friday
		}),
	))
	// Output:
	// true
}
