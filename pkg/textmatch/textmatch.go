// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textmatch compares human-entered text without regard to letter case.
//
// # Usage
//
// Used by the student name search, where "muster" must find "Mustermann" and
// "MÜL" must find "Müller". Full Unicode case folding is applied to both
// sides before comparing.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
