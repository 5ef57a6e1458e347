package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()
	user := &model.User{ID: "u1", Name: "Someone", Email: "someone@example.com", Role: model.RoleUser}

	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.FindByEmail(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Email: "dup@example.com"}))
	err := repo.Create(ctx, &model.User{ID: "u2", Email: "dup@example.com"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

// Emails are compared case-sensitively; a different casing is a
// different registry entry.
func TestMemoryUserEmailCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Email: "dup@example.com"}))
	assert.NoError(t, repo.Create(ctx, &model.User{ID: "u2", Email: "Dup@example.com"}))
}

func TestMemoryUserConcurrentRegisterSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	const attempts = 32
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &model.User{
				ID:    fmt.Sprintf("u%d", i),
				Email: "race@example.com",
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, common.ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent registration must win")
}

func TestDemoUsersSeed(t *testing.T) {
	users := DemoUsers()
	require.Len(t, users, 3)

	repo := NewMemoryUserRepository(users...)
	admin, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NotEqual(t, "admin123", admin.HashedPassword)
}
