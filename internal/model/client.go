package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person with booking history. Aggregates are never stored on
// the record; they are derived from the booking collection on read.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FrequencyTier buckets clients by completed visit count
type FrequencyTier string

const (
	FrequencyOccasional FrequencyTier = "occasional"
	FrequencyRegular    FrequencyTier = "regular"
	FrequencyVIP        FrequencyTier = "vip"
)

// ClientStats is the computed projection over a client's bookings
type ClientStats struct {
	TotalServices int           `json:"total_services"`
	TotalSpent    float64       `json:"total_spent"`
	LoyaltyPoints int           `json:"loyalty_points"`
	Frequency     FrequencyTier `json:"frequency"`
	LastVisit     string        `json:"last_visit,omitempty"`
}

type ClientWithStats struct {
	Client
	Stats ClientStats `json:"stats"`
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes" binding:"max=1000"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Phone *string `json:"phone" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	Notes *string `json:"notes" binding:"omitempty,max=1000"`
}
