// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/query"
)

// AnalysisReport is the per-course overview of one year group.
type AnalysisReport struct {
	// RoughAverage is the referent-wide mean; see [RoughAverage].
	RoughAverage    float64
	HasRoughAverage bool
	Rows            []StudentRow
}

// StudentRow lists one student's evaluations in the analysed course.
type StudentRow struct {
	Student     *gradebook.Student
	Evaluations []*gradebook.Evaluation
	Average     float64
}

// CourseRow is one line of a certificate.
type CourseRow struct {
	Course  *gradebook.Course
	Average float64
}

// Analysis builds the course analysis for yearGroup and course. Students
// appear in the referent's order; students without a matching evaluation are
// left out.
func Analysis(referent *gradebook.Referent, yearGroup *gradebook.YearGroup, course *gradebook.Course) AnalysisReport {
	result := AnalysisReport{Rows: []StudentRow{}}
	if referent == nil {
		return result
	}
	result.RoughAverage, result.HasRoughAverage = RoughAverage(referent)

	evaluations := referent.Evaluations()
	for _, student := range referent.Students() {
		matching := query.FilterEvaluations(yearGroup, course, student, evaluations)
		avg, ok := RoundedAverage(matching)
		if !ok {
			continue
		}
		result.Rows = append(result.Rows, StudentRow{
			Student:     student,
			Evaluations: matching,
			Average:     avg,
		})
	}
	return result
}

// Certificate lists the rounded average of student in every course of the
// referent that has at least one evaluation for the student in yearGroup.
func Certificate(referent *gradebook.Referent, yearGroup *gradebook.YearGroup, student *gradebook.Student) []CourseRow {
	rows := []CourseRow{}
	if referent == nil {
		return rows
	}

	evaluations := referent.Evaluations()
	for _, course := range referent.Courses() {
		avg, ok := RoundedAverage(query.FilterEvaluations(yearGroup, course, student, evaluations))
		if !ok {
			continue
		}
		rows = append(rows, CourseRow{Course: course, Average: avg})
	}
	return rows
}
