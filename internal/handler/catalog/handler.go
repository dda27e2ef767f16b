package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/admin-api/internal/service/catalog"
	apperrors "github.com/glowdesk/admin-api/pkg/errors"
	"github.com/glowdesk/admin-api/pkg/httputil"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cat := r.Group("/catalog")
	{
		cat.GET("/services", h.ListServices)
		cat.GET("/professionals", h.ListProfessionals)
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, services)
}

func (h *Handler) ListProfessionals(c *gin.Context) {
	professionals, err := h.service.ListProfessionals(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, professionals)
}
