package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
)

// Bulk actions understood by ApplyBulkAction. Anything else is a logged
// no-op so quick-action buttons never blow up a screen.
const (
	BulkActionConfirm  = "confirm"
	BulkActionCancel   = "cancel"
	BulkActionComplete = "complete"
	BulkActionDelete   = "delete"
)

var ErrBookingNotFound = errors.New("booking not found")

type Service struct {
	repo    repository.BookingRepository
	catalog repository.CatalogRepository
}

func NewService(repo repository.BookingRepository, catalog repository.CatalogRepository) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// CreateBooking validates the request, fills defaults from the service
// catalog and derives the end time from start time plus duration.
func (s *Service) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	duration := req.Duration
	price := req.Price
	if svc, err := s.catalog.GetService(ctx, req.Service); err == nil {
		if duration == 0 {
			duration = svc.Duration
		}
		if price == 0 {
			price = svc.Price
		}
	}
	if duration <= 0 {
		return nil, fmt.Errorf("unknown service %q and no duration given", req.Service)
	}

	endTime, err := addMinutes(req.StartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	status := model.BookingStatusPending
	if req.Status != "" {
		status = model.BookingStatus(req.Status)
	}
	paymentStatus := model.PaymentStatusPending
	if req.PaymentStatus != "" {
		paymentStatus = model.PaymentStatus(req.PaymentStatus)
	}

	now := time.Now()
	b := &model.Booking{
		ID:            uuid.New(),
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		Service:       req.Service,
		Professional:  req.Professional,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		Duration:      duration,
		Price:         price,
		Status:        status,
		PaymentStatus: paymentStatus,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// UpdateBooking merges non-nil request fields over the stored record.
// Changing the service or the start time re-derives the end time; setting
// the end time directly leaves the duration untouched.
func (s *Service) UpdateBooking(ctx context.Context, id uuid.UUID, req *model.UpdateBookingRequest) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	timingChanged := false
	if req.Service != nil && *req.Service != b.Service {
		b.Service = *req.Service
		if svc, err := s.catalog.GetService(ctx, b.Service); err == nil {
			b.Duration = svc.Duration
			b.Price = svc.Price
		}
		timingChanged = true
	}
	if req.StartTime != nil && *req.StartTime != b.StartTime {
		b.StartTime = *req.StartTime
		timingChanged = true
	}
	if req.Duration != nil {
		b.Duration = *req.Duration
		timingChanged = true
	}

	if timingChanged {
		endTime, err := addMinutes(b.StartTime, b.Duration)
		if err != nil {
			return nil, fmt.Errorf("invalid start time: %w", err)
		}
		b.EndTime = endTime
	}
	// An explicit end time wins over the derived one and does not touch
	// the duration.
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}

	if req.ClientName != nil {
		b.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		b.ClientPhone = *req.ClientPhone
	}
	if req.ClientEmail != nil {
		b.ClientEmail = *req.ClientEmail
	}
	if req.Professional != nil {
		b.Professional = *req.Professional
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Status != nil {
		b.Status = model.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		b.PaymentStatus = model.PaymentStatus(*req.PaymentStatus)
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	b.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	return b, nil
}

// DeleteBooking removes the record for good. Confirmation happens at the
// handler; by the time this runs the action is committed.
func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrapNotFound(err)
	}
	return nil
}

// AdvanceStatus is the one-click shortcut cycling through the four
// statuses. It never rejects a transition.
func (s *Service) AdvanceStatus(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	b.Status = NextStatus(b.Status)
	b.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to advance status: %w", err)
	}
	return b, nil
}

// SetStatus sets any of the four statuses directly, bypassing the cycle.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to set status: %w", err)
	}
	return b, nil
}

// ApplyBulkAction applies a status change or removal to every id in the
// list, equivalent to repeated single-record operations. Ids that no
// longer exist are skipped. Unknown actions are logged and leave the
// collection unchanged.
func (s *Service) ApplyBulkAction(ctx context.Context, action string, ids []uuid.UUID) (*model.BulkResult, error) {
	if action == BulkActionDelete {
		result := &model.BulkResult{Action: action}
		for _, id := range ids {
			if err := s.DeleteBooking(ctx, id); err != nil {
				result.Skipped = append(result.Skipped, id)
				continue
			}
			result.Applied++
		}
		return result, nil
	}

	var status model.BookingStatus
	switch action {
	case BulkActionConfirm:
		status = model.BookingStatusConfirmed
	case BulkActionCancel:
		status = model.BookingStatusCancelled
	case BulkActionComplete:
		status = model.BookingStatusCompleted
	default:
		log.Warn().Str("action", action).Msg("bulk action not implemented")
		return &model.BulkResult{Action: action, Unknown: true}, nil
	}

	result := &model.BulkResult{Action: action}
	for _, id := range ids {
		if _, err := s.SetStatus(ctx, id, status); err != nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		result.Applied++
	}
	return result, nil
}

// ListBookings runs the filter/sort pipeline over the latest collection
// snapshot. An empty sort field keeps insertion order.
func (s *Service) ListBookings(ctx context.Context, spec model.FilterSpec, field model.SortField, dir model.SortDirection) ([]model.Booking, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return Sort(Filter(records, spec), field, dir), nil
}

// Summary aggregates the filtered view so the stats cards always agree
// with the rows on screen.
func (s *Service) Summary(ctx context.Context, spec model.FilterSpec) (*model.Summary, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	sum := Summarize(Filter(records, spec))
	return &sum, nil
}

func (s *Service) wrapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookingNotFound
	}
	return err
}

func addMinutes(hhmm string, minutes int) (string, error) {
	t, err := time.Parse(model.TimeLayout, hhmm)
	if err != nil {
		return "", err
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(model.TimeLayout), nil
}
