// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
)

/*
TestReferent_SetID covers length, digit, and range checks.
*/
func TestReferent_SetID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		message string
	}{
		{"valid_lower_bound", "10000", ""},
		{"valid_upper_bound", "99999", ""},
		{"too_short", "1234", "Length of the ID must be 5!"},
		{"too_long", "123456", "Length of the ID must be 5!"},
		{"letters", "12a45", "ID must contain only digits!"},
		{"leading_zero", "01234", "ID must contain 5 digits!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gradebook.NewDraftReferent()
			err := r.SetID(tt.id)

			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.id, r.ID())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, gradebook.FieldID, apperr.FieldOf(err))
			assert.Empty(t, r.ID())
		})
	}
}

/*
TestReferent_SetID_Immutable verifies that a valid ID cannot be replaced.
*/
func TestReferent_SetID_Immutable(t *testing.T) {
	r := gradebook.NewDraftReferent()
	require.NoError(t, r.SetID("12345"))

	err := r.SetID("54321")
	require.Error(t, err)
	assert.Equal(t, "The ID cannot be changed once set!", err.Error())
	assert.Equal(t, "12345", r.ID())

	assert.NoError(t, r.SetID("12345"))
}

/*
TestReferent_Password checks hashing and the length limits.
*/
func TestReferent_Password(t *testing.T) {
	r := gradebook.NewDraftReferent()
	assert.False(t, r.IsMatchingPassword(""))

	err := r.SetPassword("abc")
	require.Error(t, err)
	assert.Equal(t, gradebook.FieldPassword, apperr.FieldOf(err))

	require.Error(t, r.SetPassword(strings.Repeat("p", 73)))

	require.NoError(t, r.SetPassword("pass"))
	assert.True(t, r.IsMatchingPassword("pass"))
	assert.False(t, r.IsMatchingPassword("Pass"))
}

/*
TestReferent_ContactRules checks the e-mail and phone setters.
*/
func TestReferent_ContactRules(t *testing.T) {
	r := gradebook.NewDraftReferent()

	assert.NoError(t, r.SetEmail("a@b.com"))
	assert.Error(t, r.SetEmail("a.b@com"))
	assert.Equal(t, "a@b.com", r.Email())

	assert.NoError(t, r.SetPhone("06641234567"))
	err := r.SetPhone("0664-123")
	require.Error(t, err)
	assert.Equal(t, "Phone number can only contain digits!", err.Error())
	assert.Equal(t, "06641234567", r.Phone())

	assert.Error(t, r.SetFirstName(""))
	assert.NoError(t, r.SetFirstName(" "))
}

/*
TestReferent_Apply_PartialCommit verifies that fields before the failure are
committed and fields after it are untouched.
*/
func TestReferent_Apply_PartialCommit(t *testing.T) {
	r := gradebook.NewDraftReferent()

	err := r.Apply(gradebook.RegistrationInput{
		ID:        "12345",
		FirstName: "Ann",
		LastName:  "",
		Password:  "pass",
		Email:     "a@b.com",
		Phone:     "12345",
	})

	require.Error(t, err)
	assert.Equal(t, gradebook.FieldLastName, apperr.FieldOf(err))
	assert.Equal(t, "12345", r.ID())
	assert.Equal(t, "Ann", r.FirstName())
	assert.Empty(t, r.LastName())
	assert.Empty(t, r.Email())
	assert.False(t, r.IsMatchingPassword("pass"))
}

/*
TestReferent_Collections verifies duplicate rejection and copy-on-read.
*/
func TestReferent_Collections(t *testing.T) {
	r := gradebook.NewReferent("12345", "Ann", "Lee", "pass", "a@b.com", "12345")

	assert.True(t, r.AddYearGroup(gradebook.NewYearGroup(2023, "4A")))
	assert.False(t, r.AddYearGroup(gradebook.NewYearGroup(2024, "4A")))
	assert.True(t, r.AddCourse(gradebook.NewCourse("MAT", "Mathematics")))
	assert.False(t, r.AddCourse(gradebook.NewCourse("MAT", "Maths")))
	assert.False(t, r.AddCourse(nil))

	s := gradebook.NewStudent("1234567890", "Bob", "Ray", nil)
	assert.True(t, r.AddStudent(s))
	assert.False(t, r.AddStudent(gradebook.NewStudent("1234567890", "Other", "Name", nil)))

	e := gradebook.NewEvaluation(r, nil, s, nil, "Test", "10.01.2024", 2)
	assert.True(t, r.AddEvaluation(e))
	assert.True(t, r.AddEvaluation(e))
	assert.Len(t, r.Evaluations(), 2)

	groups := r.YearGroups()
	groups[0] = nil
	assert.NotNil(t, r.YearGroups()[0])
}

/*
TestReferent_Equal compares by ID only.
*/
func TestReferent_Equal(t *testing.T) {
	a := gradebook.NewReferent("12345", "Ann", "Lee", "pass", "a@b.com", "1")
	b := gradebook.NewReferent("12345", "Bea", "Kim", "word", "b@c.com", "2")
	c := gradebook.NewReferent("54321", "Ann", "Lee", "pass", "a@b.com", "1")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "Ann Lee", a.FullName())
}
