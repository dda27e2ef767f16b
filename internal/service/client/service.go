package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

var ErrClientNotFound = errors.New("client not found")

// Visit-count thresholds for the frequency tiers.
const (
	regularVisits = 4
	vipVisits     = 10
)

type Service struct {
	repo     repository.ClientRepository
	bookings repository.BookingRepository
}

func NewService(repo repository.ClientRepository, bookings repository.BookingRepository) *Service {
	return &Service{repo: repo, bookings: bookings}
}

func (s *Service) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	now := time.Now()
	c := &model.Client{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, req *model.UpdateClientRequest) (*model.Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return c, nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrapNotFound(err)
	}
	return nil
}

// GetClient returns the client with aggregates computed from the booking
// collection. Nothing derived is ever stored on the record, so the stats
// cannot drift from the bookings they summarize.
func (s *Service) GetClient(ctx context.Context, id uuid.UUID) (*model.ClientWithStats, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return &model.ClientWithStats{Client: *c, Stats: computeStats(*c, bookings)}, nil
}

func (s *Service) ListClients(ctx context.Context) ([]model.ClientWithStats, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	out := make([]model.ClientWithStats, 0, len(clients))
	for _, c := range clients {
		out = append(out, model.ClientWithStats{Client: c, Stats: computeStats(c, bookings)})
	}
	return out, nil
}

// computeStats matches bookings to the client by phone number. Completed
// visits drive every aggregate: spend, loyalty (one point per whole
// currency unit) and frequency tier.
func computeStats(c model.Client, bookings []model.Booking) model.ClientStats {
	var stats model.ClientStats
	for _, b := range bookings {
		if b.ClientPhone != c.Phone {
			continue
		}
		if b.Status != model.BookingStatusCompleted {
			continue
		}
		stats.TotalServices++
		stats.TotalSpent += b.Price
		if b.Date > stats.LastVisit {
			stats.LastVisit = b.Date
		}
	}
	stats.LoyaltyPoints = int(stats.TotalSpent)

	switch {
	case stats.TotalServices >= vipVisits:
		stats.Frequency = model.FrequencyVIP
	case stats.TotalServices >= regularVisits:
		stats.Frequency = model.FrequencyRegular
	default:
		stats.Frequency = model.FrequencyOccasional
	}
	return stats
}

func (s *Service) wrapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrClientNotFound
	}
	return err
}
