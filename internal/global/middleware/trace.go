package middleware

import (
	"campus-connect/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Trace 为每个请求创建 OpenTelemetry span
func Trace() gin.HandlerFunc {
	return otelgin.Middleware(config.Get().OTel.ServiceName)
}
