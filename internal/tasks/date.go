package tasks

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date in ISO form (YYYY-MM-DD). Tasks are logged against
// dates, not instants, so no timezone is carried.
type Date string

// ParseDate validates and normalizes a calendar date string.
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return Date(parsed.Format(dateLayout)), nil
}

// Today returns the current local calendar date.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}

func (d Date) String() string {
	return string(d)
}
