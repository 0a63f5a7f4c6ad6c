// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate_test

import (
	"time"

	xbdate "github.com/welingtonms/xb-date"
)

// nd returns a normalized date for the given 1-based year, month and day.
func nd(year, month, day int) *xbdate.Date {
	return xbdate.FromTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// collect drains a date iterator into a slice of ISO day strings.
func collect(it func(yield func(*xbdate.Date) bool)) []string {
	var out []string
	for d := range it {
		out = append(out, d.String()[:10])
	}
	return out
}
