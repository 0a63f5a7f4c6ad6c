// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command xbdate inspects, compares and matches UTC-normalized dates from
// the command line.
package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	xbdate "github.com/welingtonms/xb-date"
)

const cmdSpec = `name: xbdate
summary: inspect, compare and match UTC-normalized dates
commands:
  - name: parse
    summary: parse a date and print its canonical ISO-8601 UTC form
    arguments:
      - <date>
  - name: add
    summary: shift a date by calendar fields and print the result
    arguments:
      - <date>
  - name: compare
    summary: compare two dates at a calendar precision
    arguments:
      - <a>
      - <b>
  - name: match
    summary: test a date against a set of constraints
    arguments:
      - <date>
`

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("parse").Runner(parseCmd, &parseFlags{})
	cmdSet.Set("add").Runner(addCmd, &addFlags{})
	cmdSet.Set("compare").Runner(compareCmd, &compareFlags{})
	cmdSet.Set("match").Runner(matchCmd, &matchFlags{})
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

type parseFlags struct {
	Raw bool `subcmd:"raw,false,preserve the time-of-day instead of normalizing to noon UTC"`
}

type addFlags struct {
	Years    int    `subcmd:"years,0,number of years to add; may be negative"`
	Months   int    `subcmd:"months,0,number of months to add; may be negative"`
	Days     int    `subcmd:"days,0,number of days to add; may be negative"`
	Duration string `subcmd:"duration,,ISO8601 date duration to add such as P1Y2M3D; prefix with - to subtract"`
	Raw      bool   `subcmd:"raw,false,preserve the time-of-day instead of normalizing to noon UTC"`
}

type compareFlags struct {
	Op        string `subcmd:"op,=,'comparison operator: >=, >, =, < or <='"`
	Precision string `subcmd:"precision,day,'comparison precision: year, month or day'"`
}

type matchFlags struct {
	On       string `subcmd:"on,,'comma separated dates to match at day precision'"`
	From     string `subcmd:"from,,start of an inclusive date range to match"`
	To       string `subcmd:"to,,end of an inclusive date range to match"`
	Weekdays bool   `subcmd:"weekdays,false,match any weekday"`
	Weekends bool   `subcmd:"weekends,false,match any weekend day"`
}

// parseInput parses a date for CLI use. The library is deliberately
// permissive about malformed input; the CLI is the caller responsible for
// validity, so unparseable input becomes an error here.
func parseInput(val string, raw bool) (*xbdate.Date, error) {
	d := xbdate.Parse(val, xbdate.WithNormalize(!raw))
	if !d.IsValid() {
		return nil, fmt.Errorf("unrecognized date: %q", val)
	}
	return d, nil
}

func parseCmd(_ context.Context, values interface{}, args []string) error {
	fv := values.(*parseFlags)
	d, err := parseInput(args[0], fv.Raw)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

func addCmd(_ context.Context, values interface{}, args []string) error {
	fv := values.(*addFlags)
	d, err := parseInput(args[0], fv.Raw)
	if err != nil {
		return err
	}
	d = d.Add(xbdate.Fields{
		xbdate.UnitYear:  fv.Years,
		xbdate.UnitMonth: fv.Months,
		xbdate.UnitDay:   fv.Days,
	})
	if len(fv.Duration) > 0 {
		fields, err := xbdate.ParseISODuration(fv.Duration)
		if err != nil {
			return err
		}
		d = d.Add(fields)
	}
	fmt.Println(d)
	return nil
}

func compareCmd(_ context.Context, values interface{}, args []string) error {
	fv := values.(*compareFlags)
	errs := errors.M{}
	a, err := parseInput(args[0], false)
	errs.Append(err)
	b, err := parseInput(args[1], false)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Println(a.Is(fv.Op, b, xbdate.Precision(fv.Precision)))
	return nil
}

func matchCmd(_ context.Context, values interface{}, args []string) error {
	fv := values.(*matchFlags)
	errs := errors.M{}
	candidate, err := parseInput(args[0], false)
	errs.Append(err)
	var constraints []xbdate.Constraint
	for _, val := range strings.Split(fv.On, ",") {
		val = strings.TrimSpace(val)
		if len(val) == 0 {
			continue
		}
		d, err := parseInput(val, false)
		if err != nil {
			errs.Append(err)
			continue
		}
		constraints = append(constraints, xbdate.On(d))
	}
	if len(fv.From) > 0 || len(fv.To) > 0 {
		from, err := parseInput(fv.From, false)
		errs.Append(err)
		to, err := parseInput(fv.To, false)
		errs.Append(err)
		if from != nil && to != nil {
			constraints = append(constraints, xbdate.Between(from, to))
		}
	}
	if fv.Weekdays {
		constraints = append(constraints, xbdate.Weekdays())
	}
	if fv.Weekends {
		constraints = append(constraints, xbdate.Weekends())
	}
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Println(candidate.Matches(constraints...))
	return nil
}
