package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowdesk/admin-api/internal/model"
)

func TestSummarizeCounts(t *testing.T) {
	records := []model.Booking{
		{Status: model.BookingStatusPending, Price: 45},
		{Status: model.BookingStatusConfirmed, Price: 35},
		{Status: model.BookingStatusConfirmed, Price: 150},
		{Status: model.BookingStatusCompleted, Price: 25},
		{Status: model.BookingStatusCancelled, Price: 40},
	}

	s := Summarize(records)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 2, s.Confirmed)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, len(records), s.Pending+s.Confirmed+s.Completed+s.Cancelled)
}

func TestSummarizeRevenueExcludesPendingAndCancelled(t *testing.T) {
	records := []model.Booking{
		{Status: model.BookingStatusPending, Price: 1000},
		{Status: model.BookingStatusCancelled, Price: 500},
		{Status: model.BookingStatusConfirmed, Price: 35},
		{Status: model.BookingStatusCompleted, Price: 25},
	}

	s := Summarize(records)
	assert.InDelta(t, 60.0, s.TotalRevenue, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, model.Summary{}, s)
}
