package tasks

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hours is an amount of logged work stored in hundredths of an hour.
// Fixed-point arithmetic keeps the daily-cap boundary exact: 7.99 + 0.01
// is exactly 8.00, never 7.999999.
type Hours int64

// MaxHours is the largest loggable value for a single task (9999.99 hours,
// two fractional digits).
const MaxHours Hours = 999999

// ParseHours converts a decimal string such as "7.5" into Hours. At most two
// fractional digits are accepted.
func ParseHours(value string) (Hours, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("hours value is empty")
	}

	negative := false
	switch trimmed[0] {
	case '+':
		trimmed = trimmed[1:]
	case '-':
		negative = true
		trimmed = trimmed[1:]
	}

	wholePart, fracPart, hasFrac := strings.Cut(trimmed, ".")
	if wholePart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid hours value %q", value)
	}
	if wholePart == "" {
		wholePart = "0"
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours value %q", value)
	}
	// whole*100 must not wrap int64; wrapped values could sneak past InRange.
	if whole > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("hours value %q is out of range", value)
	}

	var frac int64
	if hasFrac {
		if fracPart == "" || len(fracPart) > 2 {
			return 0, fmt.Errorf("hours value %q must have at most two fractional digits", value)
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hours value %q", value)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}

	total := Hours(whole*100 + frac)
	if negative {
		total = -total
	}
	return total, nil
}

// InRange reports whether the value is loggable: strictly positive and at
// most MaxHours.
func (h Hours) InRange() bool {
	return h > 0 && h <= MaxHours
}

// Float64 returns the value in hours as a float for display and export.
func (h Hours) Float64() float64 {
	return float64(h) / 100
}

// String renders the value with two fractional digits, e.g. "7.50".
func (h Hours) String() string {
	sign := ""
	v := int64(h)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
