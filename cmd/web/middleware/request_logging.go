package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bangla-news/internal/logger"
	"bangla-news/trace"
)

// RequestLogging 은 요청 진입부터 응답까지 걸린 시간과 상태를 구조화 로그로 남긴다.
// RequestTrace 뒤에 등록해야 request_id 와 최종 span 이 함께 기록된다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// 멀티 값 쿼리도 보존하기 위해 map[string][]string 으로 기록한다.
		queryParams := map[string][]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields(trace.LogFields(c.Request.Context()))
		fields["method"] = method
		fields["path"] = path
		fields["route"] = c.FullPath()
		fields["query_params"] = queryParams
		fields["status"] = c.Writer.Status()
		fields["duration_ms"] = time.Since(start).Milliseconds()
		logger.InfoWithFields("completed request", fields)
	}
}
