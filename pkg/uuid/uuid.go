// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for console sessions.

It wraps the standard UUID library to specifically generate Version 7 values.
Every console run gets one, and it is attached to every log entry of that run
so the entries of one interactive session can be grouped.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	// Convert the UUID to a string
	return id.String()
}

// Valid reports whether s is a well-formed UUID string.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
