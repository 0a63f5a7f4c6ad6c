// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate_test

import (
	"testing"

	xbdate "github.com/welingtonms/xb-date"
)

func TestOperators(t *testing.T) {
	a, b := nd(2024, 3, 15), nd(2024, 3, 16)
	for _, tc := range []struct {
		op    string
		other *xbdate.Date
		want  bool
	}{
		{"=", nd(2024, 3, 15), true},
		{"=", b, false},
		{"<", b, true},
		{"<", nd(2024, 3, 15), false},
		{"<=", b, true},
		{"<=", nd(2024, 3, 15), true},
		{">", nd(2024, 3, 14), true},
		{">", b, false},
		{">=", nd(2024, 3, 15), true},
		{">=", b, false},
	} {
		if got, want := a.Is(tc.op, tc.other), tc.want; got != want {
			t.Errorf("%v %v %v: got %v, want %v", a, tc.op, tc.other, got, want)
		}
	}
}

func TestUnknownOperator(t *testing.T) {
	a := nd(2024, 3, 15)
	// Anything unrecognized behaves as strict equality.
	for _, op := range []string{"bogus", "==", "!=", ""} {
		if got, want := a.Is(op, nd(2024, 3, 15)), true; got != want {
			t.Errorf("%q: got %v, want %v", op, got, want)
		}
		if got, want := a.Is(op, nd(2024, 3, 16)), false; got != want {
			t.Errorf("%q: got %v, want %v", op, got, want)
		}
	}
}

func TestPrecision(t *testing.T) {
	a := nd(2024, 3, 15)
	for _, tc := range []struct {
		other     *xbdate.Date
		precision xbdate.Precision
		want      bool
	}{
		{nd(2024, 12, 31), xbdate.PrecisionYear, true},
		{nd(2025, 3, 15), xbdate.PrecisionYear, false},
		{nd(2024, 3, 1), xbdate.PrecisionMonth, true},
		{nd(2024, 4, 15), xbdate.PrecisionMonth, false},
		{nd(2024, 3, 15), xbdate.PrecisionDay, true},
		{nd(2024, 3, 16), xbdate.PrecisionDay, false},
	} {
		if got, want := a.Is("=", tc.other, tc.precision), tc.want; got != want {
			t.Errorf("%v = %v at %v: got %v, want %v", a, tc.other, tc.precision, got, want)
		}
	}
	// Time-of-day never participates, whatever the precision.
	late := xbdate.Parse("2024-03-15T23:59:59Z", xbdate.WithNormalize(false))
	if got, want := a.Is("=", late), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPrecisionOrdering(t *testing.T) {
	// Month precision compares YYYYMM as a number, so a later month of an
	// earlier year still compares lower.
	a, b := nd(2023, 12, 31), nd(2024, 1, 1)
	if got, want := a.Is("<", b, xbdate.PrecisionMonth), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Is(">", a, xbdate.PrecisionMonth), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Is("=", b, xbdate.PrecisionMonth), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsDefaultsToDayPrecision(t *testing.T) {
	a := nd(2024, 3, 15)
	if got, want := a.Is("=", nd(2024, 3, 16)), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Is("=", nd(2024, 3, 16), xbdate.PrecisionMonth), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
