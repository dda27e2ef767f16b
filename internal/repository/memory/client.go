package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

type ClientRepository struct {
	store *Store
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(ctx context.Context, c *model.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.clients = append(r.store.clients, *c)
	return nil
}

func (r *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i := r.store.clientIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := r.store.clients[i]
	return &c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *model.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.clientIndex(c.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.clients[i] = *c
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.clientIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.clients = append(r.store.clients[:i], r.store.clients[i+1:]...)
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]model.Client, len(r.store.clients))
	copy(out, r.store.clients)
	return out, nil
}
