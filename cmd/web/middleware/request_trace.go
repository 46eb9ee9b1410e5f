package middleware

import (
	"github.com/gin-gonic/gin"

	"bangla-news/trace"
)

// RequestTrace는 모든 inbound 요청에 Request ID를 보장하고 컨텍스트/응답 헤더에 저장한다.
// inbound 는 span_id=0, CMS 호출은 1,2,3,... 로 증가한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request

		requestID := req.Header.Get(trace.HeaderRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)

		currentSpan := trace.CurrentSpanID(ctx)
		c.Request.Header.Set(trace.HeaderRequestID, requestID)
		c.Writer.Header().Set(trace.HeaderRequestID, requestID)
		c.Writer.Header().Set(trace.HeaderSpanID, currentSpan)

		c.Next()
	}
}
