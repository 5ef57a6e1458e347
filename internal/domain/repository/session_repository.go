package repository

import (
	"context"
	"sync"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/google/uuid"
)

// SessionRepository maps opaque session ids to the user they authenticate.
// Possession of a valid id is equivalent to being that user, so ids must be
// unguessable. Sessions never expire on their own; they live until Delete
// or process exit.
type SessionRepository interface {
	Create(ctx context.Context, user *model.User) (string, error)
	Get(ctx context.Context, sessionID string) (*model.User, error)
	Delete(ctx context.Context, sessionID string) error
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.User
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*model.User)}
}

func (r *memorySessionRepository) Create(ctx context.Context, user *model.User) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = user
	r.mu.Unlock()
	return id, nil
}

func (r *memorySessionRepository) Get(ctx context.Context, sessionID string) (*model.User, error) {
	r.mu.RLock()
	user, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

// Delete is a no-op for unknown ids.
func (r *memorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	return nil
}
