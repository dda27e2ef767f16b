package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/model"
)

// ExportHeader is the column order of CSV exports.
var ExportHeader = []string{
	"client_name", "phone", "service", "date", "time", "status", "professional", "price",
}

// ExportRows renders the filtered collection as CSV cells. Price is
// formatted as a currency string, times as a start–end range.
func (s *Service) ExportRows(ctx context.Context, spec model.FilterSpec) ([][]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return exportRows(Filter(records, spec)), nil
}

// ExportSelected renders only the given ids, preserving collection order.
func (s *Service) ExportSelected(ctx context.Context, ids []uuid.UUID) ([][]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	selected := make([]model.Booking, 0, len(ids))
	for _, r := range records {
		if wanted[r.ID] {
			selected = append(selected, r)
		}
	}
	return exportRows(selected), nil
}

func exportRows(records []model.Booking) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ClientName,
			r.ClientPhone,
			r.Service,
			r.Date,
			fmt.Sprintf("%s - %s", r.StartTime, r.EndTime),
			string(r.Status),
			r.Professional,
			fmt.Sprintf("R$ %.2f", r.Price),
		})
	}
	return rows
}
