package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
)

// Seed loads the demo catalog and a handful of bookings spread around the
// current date, standing in for the HTTP fetch a real deployment would do.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	today := now.Format(model.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(model.DateLayout)
	nextWeek := now.AddDate(0, 0, 5).Format(model.DateLayout)

	s.services = []model.Service{
		{Name: "Corte de Cabelo", Duration: 60, Price: 45, Active: true},
		{Name: "Coloração", Duration: 120, Price: 150, Active: true},
		{Name: "Manicure", Duration: 45, Price: 35, Active: true},
		{Name: "Pedicure", Duration: 60, Price: 40, Active: true},
		{Name: "Escova", Duration: 40, Price: 50, Active: true},
		{Name: "Barba", Duration: 30, Price: 25, Active: true},
	}

	s.professionals = []model.Professional{
		{Name: "Ana Silva", Specialty: "Cabelo", Active: true},
		{Name: "Carla Souza", Specialty: "Unhas", Active: true},
		{Name: "João Pereira", Specialty: "Barbearia", Active: true},
	}

	clients := []model.Client{
		{ID: uuid.New(), Name: "Maria Oliveira", Phone: "(11) 98888-1111", Email: "maria@example.com"},
		{ID: uuid.New(), Name: "Pedro Santos", Phone: "(11) 97777-2222", Email: "pedro@example.com"},
		{ID: uuid.New(), Name: "Julia Costa", Phone: "(11) 96666-3333"},
	}
	for i := range clients {
		clients[i].CreatedAt = now
		clients[i].UpdatedAt = now
	}
	s.clients = clients

	bookings := []model.Booking{
		{
			ClientName: "Maria Oliveira", ClientPhone: "(11) 98888-1111",
			Service: "Corte de Cabelo", Professional: "Ana Silva",
			Date: today, StartTime: "09:00", EndTime: "10:00",
			Duration: 60, Price: 45,
			Status: model.BookingStatusConfirmed, PaymentStatus: model.PaymentStatusPaid,
		},
		{
			ClientName: "Pedro Santos", ClientPhone: "(11) 97777-2222",
			Service: "Barba", Professional: "João Pereira",
			Date: today, StartTime: "11:00", EndTime: "11:30",
			Duration: 30, Price: 25,
			Status: model.BookingStatusPending, PaymentStatus: model.PaymentStatusPending,
		},
		{
			ClientName: "Julia Costa", ClientPhone: "(11) 96666-3333",
			Service: "Manicure", Professional: "Carla Souza",
			Date: tomorrow, StartTime: "14:00", EndTime: "14:45",
			Duration: 45, Price: 35,
			Status: model.BookingStatusPending, PaymentStatus: model.PaymentStatusPending,
		},
		{
			ClientName: "Maria Oliveira", ClientPhone: "(11) 98888-1111",
			Service: "Coloração", Professional: "Ana Silva",
			Date: nextWeek, StartTime: "10:00", EndTime: "12:00",
			Duration: 120, Price: 150,
			Status: model.BookingStatusConfirmed, PaymentStatus: model.PaymentStatusPending,
		},
	}
	for i := range bookings {
		bookings[i].ID = uuid.New()
		bookings[i].CreatedAt = now
		bookings[i].UpdatedAt = now
	}
	s.bookings = bookings
}
