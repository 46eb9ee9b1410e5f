package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bangla-news/internal/logger"
	"bangla-news/cmd/web/dto"
	"bangla-news/trace"
)

// Recovery turns a handler panic into a JSON 500 and a structured log line.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorWithFields("panic recovered", logger.Fields{
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"panic":      fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	})
}
