package handlers

import (
	"net/http"

	"github.com/geocoder89/volcanoes/internal/apperr"
	"github.com/geocoder89/volcanoes/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func RespondError(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, APIError{
		Error:   true,
		Message: message,
		Details: details,
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, message, details)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusUnauthorized, message, nil)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message, nil)
}

func RespondConflict(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusConflict, message, nil)
}

// RespondInternal masks err from the caller outside develop mode.
func RespondInternal(ctx *gin.Context, err error) {
	middlewares.AbortInternal(ctx, err)
}

// RespondAppError renders a typed request failure, falling back to a 500
// for anything else.
func RespondAppError(ctx *gin.Context, err error) {
	e, ok := apperr.As(err)
	if !ok || e.Kind == apperr.KindInternal {
		RespondInternal(ctx, err)
		return
	}
	RespondError(ctx, e.Status(), e.Message, nil)
}
