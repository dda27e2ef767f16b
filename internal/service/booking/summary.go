package booking

import "github.com/glowdesk/admin-api/internal/model"

// Summarize derives the stats-card aggregate from a record collection.
// Revenue counts confirmed and completed bookings only; pending and
// cancelled are excluded.
func Summarize(records []model.Booking) model.Summary {
	var s model.Summary
	s.Total = len(records)
	for _, r := range records {
		switch r.Status {
		case model.BookingStatusPending:
			s.Pending++
		case model.BookingStatusConfirmed:
			s.Confirmed++
			s.TotalRevenue += r.Price
		case model.BookingStatusCompleted:
			s.Completed++
			s.TotalRevenue += r.Price
		case model.BookingStatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
