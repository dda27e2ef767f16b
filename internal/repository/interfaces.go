package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
)

var ErrNotFound = errors.New("record not found")

// BookingRepository owns the booking collection. List returns a snapshot in
// insertion order; filtering and sorting happen above this layer.
type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Booking, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Client, error)
}

type CatalogRepository interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, name string) (*model.Service, error)
	ListProfessionals(ctx context.Context) ([]model.Professional, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
