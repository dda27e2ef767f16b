package client

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glowdesk/admin-api/internal/handler"
	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/service/client"
	apperrors "github.com/glowdesk/admin-api/pkg/errors"
	"github.com/glowdesk/admin-api/pkg/httputil"
)

type Handler struct {
	service *client.Service
}

func NewHandler(service *client.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, clients)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}

	created, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, created)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid client ID", err))
		return
	}

	got, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, got)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid client ID", err))
		return
	}

	var req model.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateClient(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, updated)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid client ID", err))
		return
	}
	if c.Query("confirm") != "true" {
		httputil.RespondWithError(c, apperrors.Conflict("confirmation required", nil))
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, h.mapError(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, nil)
}

func (h *Handler) mapError(err error) error {
	if errors.Is(err, client.ErrClientNotFound) {
		return apperrors.NotFound("client", err)
	}
	return apperrors.Internal(err)
}
