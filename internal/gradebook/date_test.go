// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gradebook/internal/gradebook"
)

/*
TestIsValidDateFormat tests the strict DD.MM.YYYY rule.
*/
func TestIsValidDateFormat(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"10.01.2024", true},
		{"29.02.2024", true},
		{"29.02.2023", false},
		{"31.04.2023", false},
		{"1.1.2024", false},
		{"01.01.24", false},
		{"01.01.2024.", false},
		{"01/01/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.valid, gradebook.IsValidDateFormat(tt.date))
		})
	}
}

/*
TestToday is midnight UTC and round-trips through the date format.
*/
func TestToday(t *testing.T) {
	today := gradebook.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	parsed, ok := gradebook.ParseDate(gradebook.FormatDate(today))
	assert.True(t, ok)
	assert.True(t, parsed.Equal(today))
}
