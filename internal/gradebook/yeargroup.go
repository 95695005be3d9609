// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import (
	"fmt"

	"github.com/taibuivan/gradebook/internal/platform/validate"
)

// YearGroup is a cohort such as "4AHIF" starting in a given year.
// Its description is the only lookup identifier.
type YearGroup struct {
	year        int
	description string
}

// YearGroupInput holds the raw text of the year group form.
type YearGroupInput struct {
	Year        string
	Description string
}

// NewDraftYearGroup returns a year group with year 2000 and no description.
func NewDraftYearGroup() *YearGroup {
	return &YearGroup{year: DefaultYear}
}

// NewYearGroup builds a year group directly, without validation.
func NewYearGroup(year int, description string) *YearGroup {
	return &YearGroup{year: year, description: description}
}

func (y *YearGroup) Year() int           { return y.year }
func (y *YearGroup) Description() string { return y.description }

// Identifier returns the description, which identifies the year group.
func (y *YearGroup) Identifier() string { return y.description }

// Key returns the natural key, the description.
func (y *YearGroup) Key() string {
	if y == nil {
		return ""
	}
	return y.description
}

// Equal reports whether both year groups have the same description; the year
// is ignored.
func (y *YearGroup) Equal(other *YearGroup) bool {
	return y != nil && other != nil && y.description == other.description
}

// SetYear parses raw and commits it through [YearGroup.SetYearValue].
func (y *YearGroup) SetYear(raw string) error {
	year, err := validate.Int(FieldYear, raw, "The year must be a valid number!")
	if err != nil {
		return err
	}
	return y.SetYearValue(year)
}

// SetYearValue commits a year between 1950 and next calendar year.
func (y *YearGroup) SetYearValue(year int) error {
	latest := MaxYear()
	if err := validate.Range(FieldYear, year, MinYear, latest, fmt.Sprintf("The year must be between %d and %d!", MinYear, latest)); err != nil {
		return err
	}
	y.year = year
	return nil
}

func (y *YearGroup) SetDescription(description string) error {
	if err := validate.MinLen(FieldDescription, description, MinDescriptionLength, "The description must have at least two characters!"); err != nil {
		return err
	}
	y.description = description
	return nil
}

// Apply sets year then description, stopping at the first failure.
func (y *YearGroup) Apply(in YearGroupInput) error {
	return (&validate.Validator{}).
		Apply(func() error { return y.SetYear(in.Year) }).
		Apply(func() error { return y.SetDescription(in.Description) }).
		Err()
}
