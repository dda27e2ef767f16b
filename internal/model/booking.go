package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Booking is one appointment or reservation entry. Date is an ISO calendar
// date, StartTime/EndTime are HH:MM wall-clock strings in local time.
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	ClientName    string        `json:"client_name"`
	ClientPhone   string        `json:"client_phone"`
	ClientEmail   string        `json:"client_email,omitempty"`
	Service       string        `json:"service"`
	Professional  string        `json:"professional,omitempty"`
	Date          string        `json:"date"`
	StartTime     string        `json:"start_time"`
	EndTime       string        `json:"end_time"`
	Duration      int           `json:"duration"` // in minutes
	Price         float64       `json:"price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// DateRange is the calendar window predicate of a filter
type DateRange string

const (
	DateRangeToday    DateRange = "today"
	DateRangeTomorrow DateRange = "tomorrow"
	DateRangeWeek     DateRange = "week"
	DateRangeMonth    DateRange = "month"
	DateRangeAll      DateRange = "all"
)

// FilterSpec is the combined set of active filter predicates. Empty or
// "all" values disable the corresponding predicate.
type FilterSpec struct {
	SearchText   string    `json:"search_text" form:"search"`
	Status       string    `json:"status" form:"status"`
	Service      string    `json:"service" form:"service"`
	Professional string    `json:"professional" form:"professional"`
	DateRange    DateRange `json:"date_range" form:"date_range"`
}

type CreateBookingRequest struct {
	ClientName    string  `json:"client_name" binding:"required"`
	ClientPhone   string  `json:"client_phone" binding:"required"`
	ClientEmail   string  `json:"client_email" binding:"omitempty,email"`
	Service       string  `json:"service" binding:"required"`
	Professional  string  `json:"professional" binding:"required"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" binding:"required,datetime=15:04"`
	Duration      int     `json:"duration" binding:"omitempty,gt=0"`
	Price         float64 `json:"price" binding:"omitempty,gte=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string  `json:"payment_status" binding:"omitempty,oneof=pending paid refunded failed"`
	Notes         string  `json:"notes" binding:"max=1000"`
}

type UpdateBookingRequest struct {
	ClientName    *string  `json:"client_name" binding:"omitempty,min=1"`
	ClientPhone   *string  `json:"client_phone" binding:"omitempty,min=1"`
	ClientEmail   *string  `json:"client_email" binding:"omitempty,email"`
	Service       *string  `json:"service"`
	Professional  *string  `json:"professional"`
	Date          *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime     *string  `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime       *string  `json:"end_time" binding:"omitempty,datetime=15:04"`
	Duration      *int     `json:"duration" binding:"omitempty,gt=0"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string  `json:"payment_status" binding:"omitempty,oneof=pending paid refunded failed"`
	Notes         *string  `json:"notes" binding:"omitempty,max=1000"`
}

type BulkActionRequest struct {
	Action string      `json:"action" binding:"required"`
	IDs    []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// BulkResult reports how many records a bulk action touched. Unknown
// actions come back with Applied == 0 and Unknown set.
type BulkResult struct {
	Action  string      `json:"action"`
	Applied int         `json:"applied"`
	Skipped []uuid.UUID `json:"skipped,omitempty"`
	Unknown bool        `json:"unknown,omitempty"`
}

// Summary is the derived stats-card aggregate of a booking collection
type Summary struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"total_revenue"`
}
