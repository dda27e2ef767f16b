package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/admin-api/internal/handler"
	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/service/auth"
	apperrors "github.com/glowdesk/admin-api/pkg/errors"
	"github.com/glowdesk/admin-api/pkg/httputil"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithFieldErrors(c, handler.FieldErrors(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httputil.RespondWithError(c, apperrors.Unauthorized(err))
			return
		}
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, resp)
}
