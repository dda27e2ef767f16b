package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/glowdesk/admin-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{
		Status: "success",
		Data:   data,
	})
}

// RespondWithFieldErrors sends a validation failure with per-field messages
func RespondWithFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  "error",
		Message: "validation failed",
		Fields:  fields,
	})
}

// RespondWithError maps AppError codes onto HTTP statuses
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Code {
		case apperrors.ErrNotFound:
			status = http.StatusNotFound
		case apperrors.ErrBadRequest:
			status = http.StatusBadRequest
		case apperrors.ErrUnauthorized:
			status = http.StatusUnauthorized
		case apperrors.ErrForbidden:
			status = http.StatusForbidden
		case apperrors.ErrConflict:
			status = http.StatusConflict
		}
	}

	c.JSON(status, Response{
		Status:  "error",
		Message: message,
	})
}
