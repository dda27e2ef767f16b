package memory

import (
	"context"
	"strings"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

type UserRepository struct {
	store *Store
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[strings.ToLower(u.Email)] = *u
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
