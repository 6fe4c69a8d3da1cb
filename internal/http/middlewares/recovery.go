package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Oops something went wrong!"

// DevelopMode marks the request so 500 bodies carry error details.
func DevelopMode(develop bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxDevelopMode, develop)
		c.Next()
	}
}

// Recovery turns panics into the catch-all 500 response.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		log.ErrorContext(c.Request.Context(), "panic recovered", "err", err, "stack", string(debug.Stack()))
		AbortInternal(c, err)
	})
}

// AbortInternal records err on the request and writes the masked 500 body,
// or the detailed one in develop mode.
func AbortInternal(c *gin.Context, err error) {
	_ = c.Error(err)

	if !c.GetBool(CtxDevelopMode) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": msgInternal})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"msg":    err.Error(),
		"stacks": fmt.Sprintf("%+v", err),
	})
}
