package booking

import (
	"encoding/csv"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glowdesk/admin-api/internal/handler"
	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/service/booking"
	apperrors "github.com/glowdesk/admin-api/pkg/errors"
	"github.com/glowdesk/admin-api/pkg/httputil"
	"github.com/glowdesk/admin-api/pkg/metrics"
)

type Handler struct {
	service *booking.Service
	metrics *metrics.Metrics
}

func NewHandler(service *booking.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/summary", h.Summary)
		bookings.GET("/export", h.ExportCSV)
		bookings.POST("/bulk", h.BulkAction)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.POST("/:id/advance", h.AdvanceStatus)
	}
}

type listQuery struct {
	model.FilterSpec
	SortField model.SortField     `form:"sort"`
	SortDir   model.SortDirection `form:"dir"`
}

func (h *Handler) ListBookings(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid query parameters", err))
		return
	}
	if q.SortDir == "" {
		q.SortDir = model.SortAsc
	}

	records, err := h.service.ListBookings(c.Request.Context(), q.FilterSpec, q.SortField, q.SortDir)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, records)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	h.metrics.BookingsCreated.Inc()
	httputil.RespondWithSuccess(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid booking ID", err))
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, b)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid booking ID", err))
		return
	}

	var req model.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	if req.Status != nil {
		h.metrics.StatusChanges.WithLabelValues(*req.Status).Inc()
	}
	httputil.RespondWithSuccess(c, http.StatusOK, b)
}

// DeleteBooking is destructive and irreversible, so it demands an explicit
// confirm flag from the caller before touching the collection.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid booking ID", err))
		return
	}
	if c.Query("confirm") != "true" {
		httputil.RespondWithError(c, apperrors.Conflict("confirmation required", nil))
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	h.metrics.BookingsDeleted.Inc()
	httputil.RespondWithSuccess(c, http.StatusOK, nil)
}

func (h *Handler) AdvanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid booking ID", err))
		return
	}

	b, err := h.service.AdvanceStatus(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	h.metrics.StatusChanges.WithLabelValues(string(b.Status)).Inc()
	httputil.RespondWithSuccess(c, http.StatusOK, b)
}

// BulkAction applies a quick action to many records at once. Cancelling
// and deleting are destructive, so both sit behind the confirm flag.
func (h *Handler) BulkAction(c *gin.Context) {
	var req model.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}
	destructive := req.Action == booking.BulkActionCancel || req.Action == booking.BulkActionDelete
	if destructive && c.Query("confirm") != "true" {
		httputil.RespondWithError(c, apperrors.Conflict("confirmation required", nil))
		return
	}

	result, err := h.service.ApplyBulkAction(c.Request.Context(), req.Action, req.IDs)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	h.metrics.BulkActions.WithLabelValues(req.Action).Inc()
	httputil.RespondWithSuccess(c, http.StatusOK, result)
}

func (h *Handler) Summary(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid query parameters", err))
		return
	}

	sum, err := h.service.Summary(c.Request.Context(), spec)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, sum)
}

// ExportCSV streams the filtered collection as CSV. Passing one or more
// `ids` query params exports just those records instead.
func (h *Handler) ExportCSV(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid query parameters", err))
		return
	}

	var rows [][]string
	var err error
	if raw := c.QueryArray("ids"); len(raw) > 0 {
		ids := make([]uuid.UUID, 0, len(raw))
		for _, s := range raw {
			id, perr := uuid.Parse(s)
			if perr != nil {
				httputil.RespondWithError(c, apperrors.BadRequest("invalid booking ID", perr))
				return
			}
			ids = append(ids, id)
		}
		rows, err = h.service.ExportSelected(c.Request.Context(), ids)
	} else {
		rows, err = h.service.ExportRows(c.Request.Context(), spec)
	}
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	w := csv.NewWriter(c.Writer)
	_ = w.Write(booking.ExportHeader)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Warn().Err(err).Msg("csv export truncated")
		return
	}
	h.metrics.ExportedRows.Add(float64(len(rows)))
}

func (h *Handler) mapError(err error) error {
	if errors.Is(err, booking.ErrBookingNotFound) {
		return apperrors.NotFound("booking", err)
	}
	return apperrors.Internal(err)
}
