package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
)

// Store is the in-memory backing for every repository. Slices keep
// insertion order; reads hand out copies so callers never share memory
// with the store.
type Store struct {
	mu            sync.RWMutex
	bookings      []model.Booking
	clients       []model.Client
	services      []model.Service
	professionals []model.Professional
	users         map[string]model.User // keyed by lower-cased email
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]model.User),
	}
}

func (s *Store) bookingIndex(id uuid.UUID) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clientIndex(id uuid.UUID) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) serviceIndex(name string) int {
	for i := range s.services {
		if strings.EqualFold(s.services[i].Name, name) {
			return i
		}
	}
	return -1
}
