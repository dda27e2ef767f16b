package booking

import "github.com/glowdesk/admin-api/internal/model"

// NextStatus cycles pending -> confirmed -> completed -> cancelled ->
// pending. It backs the one-click advance control only; direct edits may
// set any status without going through the cycle.
func NextStatus(s model.BookingStatus) model.BookingStatus {
	switch s {
	case model.BookingStatusPending:
		return model.BookingStatusConfirmed
	case model.BookingStatusConfirmed:
		return model.BookingStatusCompleted
	case model.BookingStatusCompleted:
		return model.BookingStatusCancelled
	case model.BookingStatusCancelled:
		return model.BookingStatusPending
	default:
		return model.BookingStatusPending
	}
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s model.BookingStatus) bool {
	switch s {
	case model.BookingStatusPending, model.BookingStatusConfirmed,
		model.BookingStatusCompleted, model.BookingStatusCancelled:
		return true
	}
	return false
}
