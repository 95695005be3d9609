// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"slices"
	"time"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/pkg/slice"
)

// SortByDate returns a copy of evaluations ordered by exam date, oldest first.
// Evaluations on the same day keep their relative order. A draft without a
// date sorts before every dated evaluation.
func SortByDate(evaluations []*gradebook.Evaluation) []*gradebook.Evaluation {
	sorted := slices.Clone(evaluations)
	if sorted == nil {
		sorted = []*gradebook.Evaluation{}
	}
	slices.SortStableFunc(sorted, func(a, b *gradebook.Evaluation) int {
		return dateOf(a).Compare(dateOf(b))
	})
	return sorted
}

// FirstDate returns the earliest exam date, or today when no evaluation has one.
func FirstDate(evaluations []*gradebook.Evaluation) time.Time {
	return boundary(evaluations, time.Time.Before)
}

// LastDate returns the latest exam date, or today when no evaluation has one.
func LastDate(evaluations []*gradebook.Evaluation) time.Time {
	return boundary(evaluations, time.Time.After)
}

// FilterByDateRange returns the evaluations dated within [first, last].
// Input order is preserved.
func FilterByDateRange(first, last time.Time, evaluations []*gradebook.Evaluation) []*gradebook.Evaluation {
	return slice.Filter(evaluations, func(e *gradebook.Evaluation) bool {
		date, ok := e.Date()
		return ok && !date.Before(first) && !date.After(last)
	})
}

// boundary returns the date that wins every comparison by better.
func boundary(evaluations []*gradebook.Evaluation, better func(time.Time, time.Time) bool) time.Time {
	var (
		result time.Time
		found  bool
	)
	for _, e := range evaluations {
		date, ok := e.Date()
		if !ok {
			continue
		}
		if !found || better(date, result) {
			result, found = date, true
		}
	}
	if !found {
		return gradebook.Today()
	}
	return result
}

func dateOf(e *gradebook.Evaluation) time.Time {
	date, _ := e.Date()
	return date
}
