package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userholder/internal/common"
	"github.com/dmitrijs2005/userholder/internal/users"
)

// MemoryRepository is a process-local Repository. Lookup-then-insert runs
// under a single lock so a login maps to at most one user.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]*users.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]*users.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[user.Login()]; ok {
		return nil, fmt.Errorf("login %q: %w", user.Login(), common.ErrAlreadyExists)
	}
	r.data[user.Login()] = user
	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.data[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.data)
	return nil
}

// Len returns the number of stored users.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ Repository = (*MemoryRepository)(nil)
