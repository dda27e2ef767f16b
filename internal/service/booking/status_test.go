package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowdesk/admin-api/internal/model"
)

func TestNextStatusCycle(t *testing.T) {
	assert.Equal(t, model.BookingStatusConfirmed, NextStatus(model.BookingStatusPending))
	assert.Equal(t, model.BookingStatusCompleted, NextStatus(model.BookingStatusConfirmed))
	assert.Equal(t, model.BookingStatusCancelled, NextStatus(model.BookingStatusCompleted))
	assert.Equal(t, model.BookingStatusPending, NextStatus(model.BookingStatusCancelled))
}

func TestNextStatusPeriodFour(t *testing.T) {
	for _, s := range []model.BookingStatus{
		model.BookingStatusPending,
		model.BookingStatusConfirmed,
		model.BookingStatusCompleted,
		model.BookingStatusCancelled,
	} {
		assert.Equal(t, s, NextStatus(NextStatus(NextStatus(NextStatus(s)))))
	}
}

func TestNextStatusTotalOverUnknownInput(t *testing.T) {
	assert.Equal(t, model.BookingStatusPending, NextStatus(model.BookingStatus("garbage")))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(model.BookingStatusPending))
	assert.True(t, ValidStatus(model.BookingStatusCancelled))
	assert.False(t, ValidStatus(model.BookingStatus("archived")))
}
