package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository/memory"
	"github.com/glowdesk/admin-api/internal/service/booking"
	"github.com/glowdesk/admin-api/pkg/metrics"
)

// Shared across tests: prometheus collectors register globally and must
// only be created once per process.
var testMetrics = metrics.NewMetrics("glowdesk_test")

func newTestRouter(t *testing.T) (*gin.Engine, *booking.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	store.Seed()
	svc := booking.NewService(memory.NewBookingRepository(store), memory.NewCatalogRepository(store))

	engine := gin.New()
	NewHandler(svc, testMetrics).RegisterRoutes(engine.Group("/api/v1"))
	return engine, svc
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_name":  "Fernanda Lima",
		"client_phone": "(11) 91111-2222",
		"service":      "Corte de Cabelo",
		"professional": "Ana Silva",
		"date":         "2025-03-10",
		"start_time":   "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string        `json:"status"`
		Data   model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "10:00", resp.Data.EndTime)
	assert.Equal(t, model.BookingStatusPending, resp.Data.Status)
}

func TestCreateBookingValidationErrors(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_name":  "",
		"client_email": "not-an-email",
		"service":      "Corte de Cabelo",
		"date":         "2025-03-10",
		"start_time":   "09:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Fields, "clientname")
	assert.Contains(t, resp.Fields, "clientphone")
	assert.Contains(t, resp.Fields, "clientemail")
	assert.Contains(t, resp.Fields, "professional")
}

func TestListBookingsWithFilter(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/bookings?status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	for _, b := range resp.Data {
		assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	}
}

func TestDeleteBookingRequiresConfirmation(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	id := records[0].ID

	w := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%s", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Declined confirmation leaves the collection untouched.
	after, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)
	assert.Len(t, after, len(records))

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%s?confirm=true", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	after, err = svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)
	assert.Len(t, after, len(records)-1)
}

func TestAdvanceStatusEndpoint(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{Status: "pending"}, "", model.SortAsc)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	w := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/advance", records[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.BookingStatusConfirmed, resp.Data.Status)
}

func TestBulkUnknownActionEndpoint(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings/bulk", gin.H{
		"action": "teleport",
		"ids":    []string{records[0].ID.String()},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.BulkResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Unknown)
	assert.Zero(t, resp.Data.Applied)
}

func TestBulkCancelRequiresConfirmation(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)

	body := gin.H{"action": "cancel", "ids": []string{records[0].ID.String()}}
	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings/bulk", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/bookings/bulk?confirm=true", body)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := svc.GetBooking(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, got.Status)
}

func TestBulkDeleteRequiresConfirmation(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	body := gin.H{"action": "delete", "ids": []string{records[0].ID.String()}}
	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings/bulk", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Declined confirmation must not delete anything.
	_, err = svc.GetBooking(context.Background(), records[0].ID)
	require.NoError(t, err)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/bookings/bulk?confirm=true", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.BulkResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Applied)

	_, err = svc.GetBooking(context.Background(), records[0].ID)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestSummaryEndpoint(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/bookings/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(records), resp.Data.Total)
}

func TestExportCSVEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/bookings/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "client_name,phone,service,date,time,status,professional,price", strings.TrimSpace(lines[0]))
}

func TestExportCSVSelectedIDs(t *testing.T) {
	engine, svc := newTestRouter(t)

	records, err := svc.ListBookings(context.Background(), model.FilterSpec{}, "", model.SortAsc)
	require.NoError(t, err)
	require.Greater(t, len(records), 1)

	w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/bookings/export?ids=%s", records[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], records[0].ClientName)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/bookings/export?ids=not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingNotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/bookings/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
