// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"

	"github.com/taibuivan/gradebook/internal/gradebook"
)

// Repository defines the storage contract for registered referents.
//
// # Implementations
//
// The program keeps everything in memory for the lifetime of the process
// ([MemoryRepository]). Nothing is persisted between runs.
type Repository interface {
	// FindByID returns the referent with the given ID.
	//
	// Returns [apperr.NotFound] if no referent is registered under this ID.
	FindByID(ctx context.Context, id string) (*gradebook.Referent, error)

	// Create stores a newly registered referent.
	//
	// Returns [apperr.Conflict] if the ID is already taken.
	Create(ctx context.Context, referent *gradebook.Referent) error

	// List returns every referent in registration order.
	List(ctx context.Context) ([]*gradebook.Referent, error)

	// Exists reports whether a referent with the given ID is registered.
	Exists(ctx context.Context, id string) (bool, error)
}
