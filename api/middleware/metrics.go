package middleware

import (
	"strconv"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics 记录请求数与耗时；未匹配路由归入 unknown 以限制标签基数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
