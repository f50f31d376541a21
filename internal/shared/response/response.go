package response

import (
	"errors"
	"net/http"

	"go-ems/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Envelope is the wire format shared by every endpoint: list responses carry
// count, failures carry message and optional field errors.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func SuccessMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// List wraps a collection response with its element count.
func List(c *gin.Context, status, count int, data any) {
	c.JSON(status, Envelope{Success: true, Count: &count, Data: data})
}

func Error(c *gin.Context, status int, message string, errs any) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}

// FromError is the single error boundary: AppErrors map onto their status and
// message, store misses become 404, anything else is a generic 500 that leaks
// nothing about internals.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		var details any
		if len(appErr.Fields) > 0 {
			details = appErr.Fields
		}
		Error(c, appErr.HTTPStatus, appErr.Message, details)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		Error(c, http.StatusNotFound, apperror.ErrNotFound.Message, nil)
		return
	}

	zap.L().Error("unhandled request error", zap.Error(err))
	Error(c, http.StatusInternalServerError, apperror.ErrInternal.Message, nil)
}
