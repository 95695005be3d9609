// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/session"
)

/*
TestMemoryRepository keeps registration order and reports misses as NOT_FOUND.
*/
func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := session.NewMemoryRepository()

	for _, id := range []string{"20000", "10000", "30000"} {
		require.NoError(t, repo.Create(ctx, gradebook.NewReferent(id, "A", "B", "pass", "a@b.com", "1")))
	}

	err := repo.Create(ctx, gradebook.NewReferent("10000", "C", "D", "pass", "c@d.com", "2"))
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"20000", "10000", "30000"}, ids)

	found, err := repo.FindByID(ctx, "30000")
	require.NoError(t, err)
	assert.Equal(t, "30000", found.ID())

	_, err = repo.FindByID(ctx, "40000")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	exists, err := repo.Exists(ctx, "20000")
	require.NoError(t, err)
	assert.True(t, exists)
}
