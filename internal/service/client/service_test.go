package client

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.BookingRepository) {
	t.Helper()
	store := memory.NewStore()
	bookings := memory.NewBookingRepository(store)
	return NewService(memory.NewClientRepository(store), bookings), bookings
}

func addBooking(t *testing.T, repo *memory.BookingRepository, phone string, status model.BookingStatus, price float64, date string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.Booking{
		ID:          uuid.New(),
		ClientName:  "whoever",
		ClientPhone: phone,
		Service:     "Corte de Cabelo",
		Date:        date,
		Price:       price,
		Status:      status,
	}))
}

func TestClientStatsDerivedFromBookings(t *testing.T) {
	svc, bookings := newTestService(t)

	c, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{
		Name:  "Maria Oliveira",
		Phone: "(11) 98888-1111",
	})
	require.NoError(t, err)

	addBooking(t, bookings, c.Phone, model.BookingStatusCompleted, 45, "2025-01-10")
	addBooking(t, bookings, c.Phone, model.BookingStatusCompleted, 150, "2025-02-20")
	addBooking(t, bookings, c.Phone, model.BookingStatusPending, 35, "2025-03-01")
	addBooking(t, bookings, c.Phone, model.BookingStatusCancelled, 40, "2025-03-02")
	addBooking(t, bookings, "(11) 90000-0000", model.BookingStatusCompleted, 500, "2025-03-03")

	got, err := svc.GetClient(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Stats.TotalServices)
	assert.InDelta(t, 195.0, got.Stats.TotalSpent, 1e-9)
	assert.Equal(t, 195, got.Stats.LoyaltyPoints)
	assert.Equal(t, model.FrequencyOccasional, got.Stats.Frequency)
	assert.Equal(t, "2025-02-20", got.Stats.LastVisit)
}

func TestClientStatsRecomputedAfterMutation(t *testing.T) {
	svc, bookings := newTestService(t)

	c, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{
		Name:  "Pedro Santos",
		Phone: "(11) 97777-2222",
	})
	require.NoError(t, err)

	got, err := svc.GetClient(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stats.TotalServices)

	addBooking(t, bookings, c.Phone, model.BookingStatusCompleted, 25, "2025-03-05")

	got, err = svc.GetClient(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stats.TotalServices)
	assert.InDelta(t, 25.0, got.Stats.TotalSpent, 1e-9)
}

func TestFrequencyTiers(t *testing.T) {
	svc, bookings := newTestService(t)

	c, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{
		Name:  "Julia Costa",
		Phone: "(11) 96666-3333",
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		addBooking(t, bookings, c.Phone, model.BookingStatusCompleted, 45, "2025-01-10")
	}
	got, err := svc.GetClient(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyRegular, got.Stats.Frequency)

	for i := 0; i < 6; i++ {
		addBooking(t, bookings, c.Phone, model.BookingStatusCompleted, 45, "2025-02-10")
	}
	got, err = svc.GetClient(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyVIP, got.Stats.Frequency)
}

func TestListClientsIncludesStats(t *testing.T) {
	svc, bookings := newTestService(t)

	a, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "A", Phone: "1"})
	require.NoError(t, err)
	_, err = svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "B", Phone: "2"})
	require.NoError(t, err)

	addBooking(t, bookings, a.Phone, model.BookingStatusCompleted, 10, "2025-03-01")

	list, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Stats.TotalServices)
	assert.Zero(t, list[1].Stats.TotalServices)
}

func TestUpdateAndDeleteClient(t *testing.T) {
	svc, _ := newTestService(t)

	c, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "A", Phone: "1"})
	require.NoError(t, err)

	name := "Renamed"
	updated, err := svc.UpdateClient(context.Background(), c.ID, &model.UpdateClientRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, c.Phone, updated.Phone)

	require.NoError(t, svc.DeleteClient(context.Background(), c.ID))
	_, err = svc.GetClient(context.Background(), c.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
