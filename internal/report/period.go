// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"fmt"
	"time"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/query"
)

// Field identifiers of the period form.
const (
	FieldFirstDate = "first_date"
	FieldLastDate  = "last_date"
)

// Period returns the evaluations dated within [first, last], oldest first.
func Period(first, last time.Time, evaluations []*gradebook.Evaluation) []*gradebook.Evaluation {
	return query.FilterByDateRange(first, last, query.SortByDate(evaluations))
}

// PeriodBounds returns the earliest and latest exam dates. Both are today
// when there are no evaluations.
func PeriodBounds(evaluations []*gradebook.Evaluation) (first, last time.Time) {
	return query.FirstDate(evaluations), query.LastDate(evaluations)
}

// ParsePeriod validates the raw period form against the available dates.
//
// # Rules
//
//  1. Both dates must have the format DD.MM.YYYY.
//  2. The first date must not precede the earliest exam, the last date must
//     not follow the latest one.
//  3. The first date must not be later than the last date.
//
// The error is a VALIDATION_ERROR on [FieldFirstDate] or [FieldLastDate].
func ParsePeriod(firstRaw, lastRaw string, evaluations []*gradebook.Evaluation) (first, last time.Time, err error) {
	const formatMessage = "The date must have the format DD.MM.YYYY!"

	// ── 1. Format ─────────────────────────────────────────────────────────

	first, ok := gradebook.ParseDate(firstRaw)
	if !ok {
		return time.Time{}, time.Time{}, apperr.Field(FieldFirstDate, formatMessage)
	}
	last, ok = gradebook.ParseDate(lastRaw)
	if !ok {
		return time.Time{}, time.Time{}, apperr.Field(FieldLastDate, formatMessage)
	}

	// ── 2. Bounds ─────────────────────────────────────────────────────────

	minDate, maxDate := PeriodBounds(evaluations)
	bounds := fmt.Sprintf("The date must be between %s and %s!",
		gradebook.FormatDate(minDate), gradebook.FormatDate(maxDate))

	if first.Before(minDate) {
		return time.Time{}, time.Time{}, apperr.Field(FieldFirstDate, bounds)
	}
	if last.After(maxDate) {
		return time.Time{}, time.Time{}, apperr.Field(FieldLastDate, bounds)
	}

	// ── 3. Order ──────────────────────────────────────────────────────────

	if first.After(last) {
		return time.Time{}, time.Time{}, apperr.Field(FieldFirstDate, "The first date cannot be later than the last date!")
	}

	return first, last, nil
}
