// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/pkg/slice"
	"github.com/taibuivan/gradebook/pkg/textmatch"
)

// FilterStudentsByName returns the students whose names contain the given
// fragments, ignoring case.
//
// # Matching
//
//   - firstName empty: only lastName is compared.
//   - lastName empty: only firstName is compared.
//   - both set: a student matches if EITHER name contains its fragment.
//
// With both fragments empty every student matches.
func FilterStudentsByName(firstName, lastName string, students []*gradebook.Student) []*gradebook.Student {
	return slice.Filter(students, func(s *gradebook.Student) bool {
		switch {
		case firstName == "":
			return textmatch.ContainsFold(s.LastName(), lastName)
		case lastName == "":
			return textmatch.ContainsFold(s.FirstName(), firstName)
		default:
			return textmatch.ContainsFold(s.FirstName(), firstName) ||
				textmatch.ContainsFold(s.LastName(), lastName)
		}
	})
}

// FilterStudentsByYearGroup returns the students assigned to yearGroup.
// Students without a year group never match.
func FilterStudentsByYearGroup(yearGroup *gradebook.YearGroup, students []*gradebook.Student) []*gradebook.Student {
	return slice.Filter(students, func(s *gradebook.Student) bool {
		return s.Year().Equal(yearGroup)
	})
}

// FilterEvaluations returns the evaluations whose year group, course, and
// student all equal the given ones.
func FilterEvaluations(yearGroup *gradebook.YearGroup, course *gradebook.Course, student *gradebook.Student, evaluations []*gradebook.Evaluation) []*gradebook.Evaluation {
	return slice.Filter(evaluations, func(e *gradebook.Evaluation) bool {
		return e.YearGroup().Equal(yearGroup) &&
			e.Course().Equal(course) &&
			e.Student().Equal(student)
	})
}

// FilterEvaluationsByCourse returns the evaluations of one course in one year
// group, for every student.
func FilterEvaluationsByCourse(yearGroup *gradebook.YearGroup, course *gradebook.Course, evaluations []*gradebook.Evaluation) []*gradebook.Evaluation {
	return slice.Filter(evaluations, func(e *gradebook.Evaluation) bool {
		return e.YearGroup().Equal(yearGroup) && e.Course().Equal(course)
	})
}
