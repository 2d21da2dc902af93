package zint

import (
	"fmt"
)

// Color is a resolved RGB(A) fill color. Alpha is only meaningful on a
// background color, where a caller-supplied zero alpha means the
// background should be left transparent rather than painted. Transparent
// reports that condition.
type Color struct {
	R, G, B, A uint8
	hasAlpha   bool
}

// Transparent reports whether this color carries an explicit zero alpha.
func (c Color) Transparent() bool {
	return c.hasAlpha && c.A == 0
}

// ParseColor parses a 6 or 8 character uppercase/lowercase hex string
// (RRGGBB or RRGGBBAA), as zint stores fgcolour/bgcolour.
func ParseColor(s string) (Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("zint: color %q must be 6 or 8 hex characters", s)
	}
	vals := make([]uint8, len(s)/2)
	for i := range vals {
		b, err := hexByte(s[i*2], s[i*2+1])
		if err != nil {
			return Color{}, fmt.Errorf("zint: color %q: %w", s, err)
		}
		vals[i] = b
	}
	c := Color{R: vals[0], G: vals[1], B: vals[2]}
	if len(vals) == 4 {
		c.A = vals[3]
		c.hasAlpha = true
	}
	return c, nil
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
