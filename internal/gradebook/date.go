// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import (
	"strings"
	"time"
)

// DateLayout is the exam date format DD.MM.YYYY in Go reference-time notation.
const DateLayout = "02.01.2006"

// IsValidDateFormat reports whether date is exactly "DD.MM.YYYY" and names a
// real calendar day. "29.02.2024" is valid, "31.04.2023" and "1.1.2024" are not.
func IsValidDateFormat(date string) bool {
	_, ok := ParseDate(date)
	return ok
}

// ParseDate parses a "DD.MM.YYYY" date as midnight UTC.
func ParseDate(date string) (time.Time, bool) {
	parts := strings.Split(date, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return time.Time{}, false
	}

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatDate renders t as "DD.MM.YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date as midnight UTC, comparable with
// values from [ParseDate].
func Today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
