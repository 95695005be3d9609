// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query holds the stateless lookups, filters, and date helpers used by
the screens and reports.

Rules:

  - Inputs are never mutated. Every filter returns a freshly allocated slice.
  - A lookup miss is reported as (nil, false), never as an error.
  - Matching uses the entities' natural keys and Equal methods, not pointers.
*/
package query

import (
	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/pkg/slice"
)

// FindByKey returns the first item whose natural key equals key.
func FindByKey[T gradebook.Keyed](key string, items []T) (T, bool) {
	return slice.Find(items, func(item T) bool { return item.Key() == key })
}

// Referent finds a referent by ID.
func Referent(id string, referents []*gradebook.Referent) (*gradebook.Referent, bool) {
	return FindByKey(id, referents)
}

// YearGroup finds a year group by its identifier (the description).
func YearGroup(identifier string, yearGroups []*gradebook.YearGroup) (*gradebook.YearGroup, bool) {
	return FindByKey(identifier, yearGroups)
}

// Student finds a student by matriculation number.
func Student(matriculationNumber string, students []*gradebook.Student) (*gradebook.Student, bool) {
	return FindByKey(matriculationNumber, students)
}

// Course finds a course by abbreviation.
func Course(abbreviation string, courses []*gradebook.Course) (*gradebook.Course, bool) {
	return FindByKey(abbreviation, courses)
}
