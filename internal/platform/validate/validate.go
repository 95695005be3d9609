// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides pure field rules and a chainable Validator that
// stops at the first failing field.
//
// # Architecture
//
// Every rule is a pure function of the candidate value. It returns nil on
// success or a single-field [apperr.AppError] (VALIDATION_ERROR) naming the
// field. Entity setters call the rules and commit only when they pass.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/gradebook/internal/platform/apperr"
)

// Validator runs validation steps in order and remembers the first failure.
//
// Steps after a failure are not executed at all, so setters chained through
// [Validator.Apply] leave every later field untouched.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	err error
}

// Apply runs step unless an earlier step already failed.
//
// # Example
//
//	err := (&validate.Validator{}).
//		Apply(func() error { return course.SetAbbreviation(in.Abbreviation) }).
//		Apply(func() error { return course.SetDescription(in.Description) }).
//		Err()
func (v *Validator) Apply(step func() error) *Validator {
	if v.err != nil {
		return v
	}
	v.err = step()
	return v
}

// Check records err if no earlier failure exists. Use it for rules whose
// result is already computed.
func (v *Validator) Check(err error) *Validator {
	if v.err == nil && err != nil {
		v.err = err
	}
	return v
}

// Err returns the first failure, or nil if every step passed.
//
// Call it at the end of the chain.
func (v *Validator) Err() error {
	return v.err
}

// HasErrors reports whether any step has failed so far.
func (v *Validator) HasErrors() bool {
	return v.err != nil
}

// # Length Rules

// NotEmpty fails if the value has no characters. Whitespace counts as content.
func NotEmpty(field, value, message string) error {
	if value == "" {
		return apperr.Field(field, message)
	}
	return nil
}

// MinLen fails if the Unicode character count is below min.
func MinLen(field, value string, min int, message string) error {
	if utf8.RuneCountInString(value) < min {
		return apperr.Field(field, message)
	}
	return nil
}

// LenBetween fails if the Unicode character count is outside [min, max].
func LenBetween(field, value string, min, max int, message string) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return apperr.Field(field, message)
	}
	return nil
}

// MaxBytes fails if the encoded value is longer than max bytes.
func MaxBytes(field, value string, max int) error {
	if len(value) > max {
		return apperr.Field(field, fmt.Sprintf("Maximum %d bytes", max))
	}
	return nil
}

// # Numeric Rules

// Digits reports whether value is non-empty and consists only of ASCII digits.
func Digits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// Int parses raw as a base-10 int.
func Int(field, raw, message string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Field(field, message)
	}
	return n, nil
}

// Int64 fails if raw does not parse fully as a 64-bit integer.
func Int64(field, raw, message string) error {
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return apperr.Field(field, message)
	}
	return nil
}

// Range fails if the value is outside the [min, max] range (inclusive).
func Range(field string, value, min, max int, message string) error {
	if value < min || value > max {
		return apperr.Field(field, message)
	}
	return nil
}

// # Format Rules

// Email fails unless the value contains "@" and the part after the first "@"
// contains a ".".
func Email(field, value, message string) error {
	_, domain, found := strings.Cut(value, "@")
	if !found || !strings.Contains(domain, ".") {
		return apperr.Field(field, message)
	}
	return nil
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	validate.Custom("exam_grade", grade < 1 || grade > 5, "Must be between 1 and 5")
func Custom(field string, failed bool, message string) error {
	if failed {
		return apperr.Field(field, message)
	}
	return nil
}
