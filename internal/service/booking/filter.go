package booking

import (
	"strings"
	"time"

	"github.com/glowdesk/admin-api/internal/model"
)

// Filter returns the subset of records matching every active predicate of
// spec, in input order. The input slice is never modified.
func Filter(records []model.Booking, spec model.FilterSpec) []model.Booking {
	return FilterAt(records, spec, time.Now())
}

// FilterAt is Filter with an explicit reference time for the date-range
// predicate. Calendar comparisons use the local timezone.
func FilterAt(records []model.Booking, spec model.FilterSpec, now time.Time) []model.Booking {
	out := make([]model.Booking, 0, len(records))
	for _, r := range records {
		if matches(r, spec, now) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r model.Booking, spec model.FilterSpec, now time.Time) bool {
	if !matchesSearch(r, spec.SearchText) {
		return false
	}
	if active(spec.Status) && string(r.Status) != spec.Status {
		return false
	}
	if active(spec.Service) && r.Service != spec.Service {
		return false
	}
	if active(spec.Professional) && r.Professional != spec.Professional {
		return false
	}
	return matchesDateRange(r.Date, spec.DateRange, now)
}

func active(v string) bool {
	return v != "" && v != "all"
}

// matchesSearch matches the query case-insensitively against client name
// and service, and verbatim against the phone number.
func matchesSearch(r model.Booking, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.ClientName), q) {
		return true
	}
	if strings.Contains(r.ClientPhone, query) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Service), q)
}

func matchesDateRange(date string, dr model.DateRange, now time.Time) bool {
	if dr == "" || dr == model.DateRangeAll {
		return true
	}

	d, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		return false
	}
	today := truncateToDay(now)
	d = truncateToDay(d)

	switch dr {
	case model.DateRangeToday:
		return d.Equal(today)
	case model.DateRangeTomorrow:
		return d.Equal(today.AddDate(0, 0, 1))
	case model.DateRangeWeek:
		return !d.Before(today) && !d.After(today.AddDate(0, 0, 7))
	case model.DateRangeMonth:
		// Upper bound only: past dates pass. This mirrors the behavior of
		// the reservations screen this replaces; tightening it is a product
		// decision (see DESIGN.md).
		return !d.After(today.AddDate(0, 1, 0))
	default:
		return true
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
