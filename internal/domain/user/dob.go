package user

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsRealDate reports whether s is a YYYY-MM-DD string naming an actual
// calendar day. Rollover dates such as 2021-02-29 or 2021-04-31 fail the
// round trip and are rejected.
func IsRealDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}

	return t.Format(dateLayout) == s
}

// IsBeforeDay reports whether the YYYY-MM-DD date s falls on a calendar day
// strictly earlier than now's. Time of day is ignored.
func IsBeforeDay(s string, now time.Time) bool {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}

	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)

	return d.Before(today)
}
