package dates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBirthday is returned for birth dates that match none of the accepted layouts.
var ErrBirthday = errors.New("invalid birthday")

// Code formats a birth date as YYMMDD. The year wraps modulo 100 and every
// field is zero padded; values are not checked against the calendar.
func Code(day, month, year int) string {
	return fmt.Sprintf("%02d%02d%02d", year%100, month, day)
}

// ParseBirthday accepts YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD. Only the shape is
// checked, so "1970-13-40" parses.
func ParseBirthday(s string) (day, month, year int, err error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 10 && s[4] == '-' && s[7] == '-':
		year, month, day, err = scan3(s[:4], s[5:7], s[8:])
	case len(s) == 10 && s[2] == '/' && s[5] == '/':
		day, month, year, err = scan3(s[:2], s[3:5], s[6:])
	case len(s) == 8:
		year, month, day, err = scan3(s[:4], s[4:6], s[6:])
	default:
		err = fmt.Errorf("%w: %q (want YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD)", ErrBirthday, s)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	return day, month, year, nil
}

func scan3(a, b, c string) (x, y, z int, err error) {
	for _, p := range []struct {
		s   string
		dst *int
	}{{a, &x}, {b, &y}, {c, &z}} {
		n, err := digits(p.s)
		if err != nil {
			return 0, 0, 0, err
		}
		*p.dst = n
	}
	return x, y, z, nil
}

func digits(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: non-digit %q in %q", ErrBirthday, r, s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// Format renders a birth date as YYYY-MM-DD.
func Format(day, month, year int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
