// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import "github.com/taibuivan/gradebook/internal/platform/validate"

// Course is a subject such as "MAT" / "Mathematics".
type Course struct {
	abbreviation string
	description  string
}

// CourseInput holds the raw text of the course form.
type CourseInput struct {
	Abbreviation string
	Description  string
}

// NewDraftCourse returns a course with every field empty.
func NewDraftCourse() *Course {
	return &Course{}
}

// NewCourse builds a course directly, without validation.
func NewCourse(abbreviation, description string) *Course {
	return &Course{abbreviation: abbreviation, description: description}
}

func (c *Course) Abbreviation() string { return c.abbreviation }
func (c *Course) Description() string  { return c.description }

// Key returns the natural key, the abbreviation.
func (c *Course) Key() string {
	if c == nil {
		return ""
	}
	return c.abbreviation
}

// Equal reports whether both courses have the same abbreviation.
func (c *Course) Equal(other *Course) bool {
	return c != nil && other != nil && c.abbreviation == other.abbreviation
}

// SetAbbreviation commits an abbreviation of two to four characters.
func (c *Course) SetAbbreviation(abbreviation string) error {
	err := validate.LenBetween(FieldAbbreviation, abbreviation, MinAbbreviationLength, MaxAbbreviationLength,
		"The abbreviation must contain 2 to 4 characters!")
	if err != nil {
		return err
	}
	c.abbreviation = abbreviation
	return nil
}

func (c *Course) SetDescription(description string) error {
	if err := validate.MinLen(FieldDescription, description, MinDescriptionLength, "The description must have at least two characters!"); err != nil {
		return err
	}
	c.description = description
	return nil
}

// Apply sets abbreviation then description, stopping at the first failure.
func (c *Course) Apply(in CourseInput) error {
	return (&validate.Validator{}).
		Apply(func() error { return c.SetAbbreviation(in.Abbreviation) }).
		Apply(func() error { return c.SetDescription(in.Description) }).
		Err()
}
