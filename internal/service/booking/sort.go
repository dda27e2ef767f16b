package booking

import (
	"sort"
	"strings"

	"github.com/glowdesk/admin-api/internal/model"
)

// Sort returns a new slice ordered by field and direction. The sort is
// stable so records with equal keys keep their relative input order across
// repeated renders. The input slice is never modified.
func Sort(records []model.Booking, field model.SortField, dir model.SortDirection) []model.Booking {
	out := make([]model.Booking, len(records))
	copy(out, records)
	if field == "" {
		return out
	}

	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == model.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field model.SortField) func(a, b model.Booking) bool {
	switch field {
	case model.SortByPrice:
		return func(a, b model.Booking) bool { return a.Price < b.Price }
	case model.SortByDate:
		return func(a, b model.Booking) bool { return dateKey(a) < dateKey(b) }
	case model.SortByCreatedAt:
		return func(a, b model.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case model.SortByService:
		return stringLess(func(b model.Booking) string { return b.Service })
	case model.SortByProfessional:
		return stringLess(func(b model.Booking) string { return b.Professional })
	case model.SortByStatus:
		return stringLess(func(b model.Booking) string { return string(b.Status) })
	default:
		return stringLess(func(b model.Booking) string { return b.ClientName })
	}
}

func stringLess(key func(model.Booking) string) func(a, b model.Booking) bool {
	return func(a, b model.Booking) bool {
		return strings.ToLower(key(a)) < strings.ToLower(key(b))
	}
}

// dateKey composes date and start time so same-day records order by time.
// ISO date + HH:MM compare correctly as strings.
func dateKey(b model.Booking) string {
	if b.StartTime == "" {
		return b.Date
	}
	return b.Date + " " + b.StartTime
}

// SortState tracks the column header toggling of a listing: clicking the
// active field flips direction, clicking a new field resets to ascending.
type SortState struct {
	Field model.SortField
	Dir   model.SortDirection
}

func (s *SortState) Toggle(field model.SortField) {
	if s.Field == field {
		if s.Dir == model.SortAsc {
			s.Dir = model.SortDesc
		} else {
			s.Dir = model.SortAsc
		}
		return
	}
	s.Field = field
	s.Dir = model.SortAsc
}
