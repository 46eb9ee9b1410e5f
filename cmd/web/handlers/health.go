package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bangla-news/cmd/web/dto"
	"bangla-news/content"
)

const healthTimeout = 3 * time.Second

// @Summary Health check
// @Description Reports whether the content backend answers
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Failure 503 {object} dto.HealthDTO
// @Router /health [get]
func HealthHandler(gateway content.Gateway, backend string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := gateway.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", Backend: backend, Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", Backend: backend})
	}
}
