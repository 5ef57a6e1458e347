package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepository is the account registry. Emails are unique; entries are
// immutable once created.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

// NewMemoryUserRepository builds the in-memory registry, pre-populated
// with the given accounts. Seed emails are assumed unique.
func NewMemoryUserRepository(seed ...*model.User) UserRepository {
	r := &memoryUserRepository{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
	for _, u := range seed {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

// Create holds the lock across the duplicate check and the insert, so of
// two concurrent registrations with one email exactly one succeeds.
func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return common.ErrEmailTaken
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	user, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	user, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

type pgUserRepository struct {
	db *sql.DB
}

// NewPgUserRepository backs the registry with Postgres for deployments
// that want accounts to survive restarts.
func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, name, email, hashed_password, role)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword, user.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return common.ErrEmailTaken
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, email, hashed_password, role, created_at
	          FROM users WHERE email = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, name, email, hashed_password, role, created_at
	          FROM users WHERE id = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}
