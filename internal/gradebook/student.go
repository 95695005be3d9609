// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import (
	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/platform/validate"
)

// Student is a learner assigned to exactly one year group of the same referent.
type Student struct {
	matriculationNumber string
	firstName           string
	lastName            string
	year                *YearGroup
}

// StudentInput holds the raw text of the student form. Year is the year
// group identifier (its description).
type StudentInput struct {
	MatriculationNumber string
	FirstName           string
	LastName            string
	Year                string
}

// NewDraftStudent returns a student with every field empty and no year group.
func NewDraftStudent() *Student {
	return &Student{}
}

// NewStudent builds a student directly, without validation.
func NewStudent(matriculationNumber, firstName, lastName string, year *YearGroup) *Student {
	return &Student{
		matriculationNumber: matriculationNumber,
		firstName:           firstName,
		lastName:            lastName,
		year:                year,
	}
}

func (s *Student) MatriculationNumber() string { return s.matriculationNumber }
func (s *Student) FirstName() string           { return s.firstName }
func (s *Student) LastName() string            { return s.lastName }

// Year returns the assigned year group, or nil for a draft.
func (s *Student) Year() *YearGroup { return s.year }

// FullName returns first and last name separated by a space.
func (s *Student) FullName() string { return s.firstName + " " + s.lastName }

// Key returns the natural key, the matriculation number.
func (s *Student) Key() string {
	if s == nil {
		return ""
	}
	return s.matriculationNumber
}

// Equal reports whether both students have the same matriculation number.
func (s *Student) Equal(other *Student) bool {
	return s != nil && other != nil && s.matriculationNumber == other.matriculationNumber
}

// SetMatriculationNumber commits a number of exactly ten digits.
func (s *Student) SetMatriculationNumber(matriculationNumber string) error {
	if len(matriculationNumber) != MatriculationNumberLength {
		return apperr.Field(FieldMatriculationNumber, "Length of the matriculation number must be 10!")
	}
	if !validate.Digits(matriculationNumber) {
		return apperr.Field(FieldMatriculationNumber, "Matriculation number must contain only digits!")
	}
	s.matriculationNumber = matriculationNumber
	return nil
}

func (s *Student) SetFirstName(firstName string) error {
	if err := validate.NotEmpty(FieldFirstName, firstName, "The first name cannot be empty!"); err != nil {
		return err
	}
	s.firstName = firstName
	return nil
}

func (s *Student) SetLastName(lastName string) error {
	if err := validate.NotEmpty(FieldLastName, lastName, "The last name cannot be empty!"); err != nil {
		return err
	}
	s.lastName = lastName
	return nil
}

// SetYear resolves identifier among yearGroups and assigns the match.
func (s *Student) SetYear(identifier string, yearGroups []*YearGroup) error {
	yearGroup, ok := lookup(identifier, yearGroups)
	if !ok {
		return apperr.Field(FieldYear, "The year group could not be found!")
	}
	s.AssignYear(yearGroup)
	return nil
}

// AssignYear sets the year group reference without lookup.
func (s *Student) AssignYear(yearGroup *YearGroup) {
	s.year = yearGroup
}

// Apply runs the student form setters in order, stopping at the first failure.
func (s *Student) Apply(in StudentInput, yearGroups []*YearGroup) error {
	return (&validate.Validator{}).
		Apply(func() error { return s.SetMatriculationNumber(in.MatriculationNumber) }).
		Apply(func() error { return s.SetFirstName(in.FirstName) }).
		Apply(func() error { return s.SetLastName(in.LastName) }).
		Apply(func() error { return s.SetYear(in.Year, yearGroups) }).
		Err()
}
