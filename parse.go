// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

import (
	"strings"
	"time"
)

// Layouts accepted by Parse, tried in order. Layouts without an offset are
// interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Parse interprets val as an ISO-8601 date or date-time, optionally with
// fractional seconds and an offset. It never returns an error: input that
// matches no layout yields an invalid Date, leaving validity checking to
// the caller.
func Parse(val string, opts ...Option) *Date {
	val = strings.TrimSpace(val)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, val); err == nil {
			return FromTime(t, opts...)
		}
	}
	return &Date{}
}
