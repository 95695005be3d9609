// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gradebook/internal/platform/apperr"
)

/*
TestField verifies that a single-field error exposes its field through the helpers.
*/
func TestField(t *testing.T) {
	err := apperr.Field("email", "E-Mail doesn't have a valid format!")

	assert.Equal(t, apperr.CodeValidation, err.Code)
	assert.Equal(t, "email", apperr.FieldOf(err))
	assert.Equal(t, "E-Mail doesn't have a valid format!", err.Error())
	require.Len(t, err.Details, 1)
}

/*
TestAs_Wrapped verifies that As and HasCode traverse wrapped errors.
*/
func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("session: %w", apperr.Conflict("Course already exists"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeConflict))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.Empty(t, apperr.FieldOf(wrapped))
}

/*
TestInternal_KeepsCause verifies that the cause stays reachable through errors.Is.
*/
func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("bcrypt exploded")
	err := apperr.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "bcrypt")
	assert.False(t, apperr.IsAppError(cause))
	assert.True(t, apperr.IsAppError(err))
}

/*
TestConflictField verifies that a duplicate-key conflict still names its field.
*/
func TestConflictField(t *testing.T) {
	err := apperr.ConflictField("abbreviation", "This course already exists!")

	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, "abbreviation", apperr.FieldOf(err))
}
