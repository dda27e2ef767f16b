package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

type BookingRepository struct {
	store *Store
}

var _ repository.BookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bookings = append(r.store.bookings, *b)
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i := r.store.bookingIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	b := r.store.bookings[i]
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *model.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.bookingIndex(b.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.bookings[i] = *b
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.bookingIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.bookings = append(r.store.bookings[:i], r.store.bookings[i+1:]...)
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]model.Booking, len(r.store.bookings))
	copy(out, r.store.bookings)
	return out, nil
}
