// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package report computes grade averages and assembles the analysis,
// certificate, and period views shown by the console.
//
// Averages are plain arithmetic means of exam grades. An empty input has no
// average, which is reported by a false boolean rather than NaN.
package report

import (
	"math"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/pkg/slice"
)

// Average returns the unrounded mean grade.
func Average(evaluations []*gradebook.Evaluation) (float64, bool) {
	if len(evaluations) == 0 {
		return 0, false
	}
	sum := slice.Reduce(evaluations, 0, func(total int, e *gradebook.Evaluation) int {
		return total + e.ExamGrade()
	})
	return float64(sum) / float64(len(evaluations)), true
}

// RoundedAverage returns the mean grade rounded to two decimals. Halves round
// to the even neighbour, so 2.125 becomes 2.12.
func RoundedAverage(evaluations []*gradebook.Evaluation) (float64, bool) {
	avg, ok := Average(evaluations)
	if !ok {
		return 0, false
	}
	return Round(avg), true
}

// RoughAverage returns the mean over every evaluation the referent owns,
// regardless of year group or course.
func RoughAverage(referent *gradebook.Referent) (float64, bool) {
	if referent == nil {
		return 0, false
	}
	return Average(referent.Evaluations())
}

// Round rounds x to two decimals, halves to even.
func Round(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
