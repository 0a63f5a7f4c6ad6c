// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xbdate

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidDuration = errors.New("invalid ISO8601 duration")

func consumeAmount(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidDuration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidDuration)
}

// ParseISODuration parses the date portion of an ISO8601 duration,
// [-]PnYnMnWnD, into Fields suitable for Add or Subtract. Weeks are folded
// into days. A leading '-' negates every field. Time designators (a T
// section) are rejected since the library works at calendar-day precision.
func ParseISODuration(dur string) (Fields, error) {
	nl := len(dur)
	hasP, hasNP := nl > 0 && dur[0] == 'P', nl > 1 && dur[0] == '-' && dur[1] == 'P'
	if !hasP && !hasNP {
		return nil, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidDuration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return nil, fmt.Errorf("empty duration: %w", ErrInvalidDuration)
	}
	fields := Fields{}
	for len(dur) > 0 {
		if dur[0] == 'T' {
			return nil, fmt.Errorf("time designators are not supported: %s: %w", dur, ErrInvalidDuration)
		}
		n, designator, idx, err := consumeAmount(dur)
		if err != nil {
			return nil, err
		}
		dur = dur[idx:]
		switch designator {
		case 'Y':
			fields[UnitYear] += n
		case 'M':
			fields[UnitMonth] += n
		case 'W':
			fields[UnitDay] += 7 * n
		case 'D':
			fields[UnitDay] += n
		}
	}
	if hasNP {
		for unit, n := range fields {
			fields[unit] = -n
		}
	}
	return fields, nil
}
