package memory

import (
	"context"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

type CatalogRepository struct {
	store *Store
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]model.Service, len(r.store.services))
	copy(out, r.store.services)
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, name string) (*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i := r.store.serviceIndex(name)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	svc := r.store.services[i]
	return &svc, nil
}

func (r *CatalogRepository) ListProfessionals(ctx context.Context) ([]model.Professional, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]model.Professional, len(r.store.professionals))
	copy(out, r.store.professionals)
	return out, nil
}
