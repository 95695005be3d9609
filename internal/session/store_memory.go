// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
)

// MemoryRepository implements [Repository] with a map plus the registration
// order. It is not safe for concurrent use.
type MemoryRepository struct {
	byID  map[string]*gradebook.Referent
	order []string
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*gradebook.Referent)}
}

// FindByID implements [Repository].
func (repo *MemoryRepository) FindByID(_ context.Context, id string) (*gradebook.Referent, error) {
	referent, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("Referent")
	}
	return referent, nil
}

// Create implements [Repository].
func (repo *MemoryRepository) Create(_ context.Context, referent *gradebook.Referent) error {
	if referent == nil {
		return apperr.Internal(errNilReferent)
	}
	if _, taken := repo.byID[referent.ID()]; taken {
		return apperr.ConflictField(gradebook.FieldID, "A referent with this ID already exists!")
	}
	repo.byID[referent.ID()] = referent
	repo.order = append(repo.order, referent.ID())
	return nil
}

// List implements [Repository].
func (repo *MemoryRepository) List(_ context.Context) ([]*gradebook.Referent, error) {
	referents := make([]*gradebook.Referent, 0, len(repo.order))
	for _, id := range repo.order {
		referents = append(referents, repo.byID[id])
	}
	return referents, nil
}

// Exists implements [Repository].
func (repo *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := repo.byID[id]
	return ok, nil
}
