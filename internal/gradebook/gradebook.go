// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gradebook defines the domain entities of the grade book and their
field-level validation rules.

# Entities

  - Referent: the teacher who owns every other entity.
  - YearGroup: a cohort, identified by its description (e.g. "4AHIF").
  - Course: a subject, identified by its abbreviation.
  - Student: a learner, identified by a 10-digit matriculation number.
  - Evaluation: one graded exam linking a referent, year group, student, and course.

# Lifecycle

Entities start as drafts ([NewDraftReferent], [NewDraftYearGroup], ...) and are
filled field by field through validating setters. A setter either commits the
value and returns nil, or leaves the field unchanged and returns a
VALIDATION_ERROR [apperr.AppError] naming the field. The Apply methods run all
setters of a form in order and stop at the first failure; fields before the
failure stay committed.

# Identity

Equality is by natural key (see each type's Equal), never by pointer. The
package does not enforce uniqueness; the owner of a collection decides.

# Concurrency

Entities are not safe for concurrent use. The program drives them from a
single goroutine.
*/
package gradebook

import "time"

// # Field Identifiers

// Field names reported in [apperr.FieldError] values.
const (
	FieldID                  = "id"
	FieldFirstName           = "first_name"
	FieldLastName            = "last_name"
	FieldPassword            = "password"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldYear                = "year"
	FieldDescription         = "description"
	FieldAbbreviation        = "abbreviation"
	FieldMatriculationNumber = "matriculation_number"
	FieldReferent            = "referent"
	FieldYearGroup           = "year_group"
	FieldStudent             = "student"
	FieldCourse              = "course"
	FieldExamDescription     = "exam_description"
	FieldExamDate            = "exam_date"
	FieldExamGrade           = "exam_grade"
)

// # Constraints

const (
	// ReferentIDLength is the exact number of digits of a referent ID.
	ReferentIDLength = 5
	// MinReferentID and MaxReferentID bound the numeric value of a referent ID.
	MinReferentID = 10000
	MaxReferentID = 99999
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 4

	// MinYear is the earliest accepted year group year.
	MinYear = 1950
	// DefaultYear is the year of a draft year group.
	DefaultYear = 2000

	// MinDescriptionLength applies to year group, course, and exam descriptions.
	MinDescriptionLength = 2
	// MinAbbreviationLength and MaxAbbreviationLength bound a course abbreviation.
	MinAbbreviationLength = 2
	MaxAbbreviationLength = 4

	// MatriculationNumberLength is the exact number of digits of a matriculation number.
	MatriculationNumberLength = 10

	// MinGrade is the best grade, MaxGrade the worst.
	MinGrade = 1
	MaxGrade = 5
)

// Keyed is implemented by every entity that has a natural key.
type Keyed interface {
	Key() string
}

// now is the clock used for the year group upper bound.
var now = time.Now

// MaxYear returns the latest accepted year group year: next calendar year.
func MaxYear() int {
	return now().Year() + 1
}

// lookup returns the first item whose natural key equals key.
func lookup[T Keyed](key string, items []T) (T, bool) {
	for _, item := range items {
		if item.Key() == key {
			return item, true
		}
	}

	var zero T
	return zero, false
}
