package repository

import (
	"context"
	"sync"
	"testing"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	user := &model.User{ID: "1", Email: "admin@example.com", Role: model.RoleAdmin}

	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemorySessionDeleteUnknownIsNoop(t *testing.T) {
	repo := NewMemorySessionRepository()
	assert.NoError(t, repo.Delete(context.Background(), "no-such-session"))
}

func TestMemorySessionIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	user := &model.User{ID: "1"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := repo.Create(ctx, user)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}

func TestMemorySessionConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	user := &model.User{ID: "1"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, user)
			assert.NoError(t, err)
			_, err = repo.Get(ctx, id)
			assert.NoError(t, err)
			assert.NoError(t, repo.Delete(ctx, id))
		}()
	}
	wg.Wait()
}
