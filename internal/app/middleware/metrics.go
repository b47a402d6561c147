package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {

	durationHistogram, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)

	successCounter, _ := meter.Int64Counter(
		"http.server.success_requests_total",
		metric.WithDescription("The total number of successful HTTP requests."),
	)

	errorCounter, _ := meter.Int64Counter(
		"http.server.error_requests_total",
		metric.WithDescription("The total number of failed HTTP requests."),
	)

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Milliseconds()

		path := c.FullPath()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		attributes := []attribute.KeyValue{
			semconv.HTTPRouteKey.String(path),
			semconv.HTTPMethodKey.String(method),
			semconv.HTTPStatusCodeKey.Int(statusCode),
			attribute.String("http.client_ip", c.ClientIP()),
		}

		durationHistogram.Record(
			c.Request.Context(),
			duration,
			metric.WithAttributes(attributes...),
		)

		requestCounter.Add(
			c.Request.Context(),
			1,
			metric.WithAttributes(attributes...),
		)

		if statusCode >= 200 && statusCode < 400 {
			successCounter.Add(
				c.Request.Context(),
				1,
				metric.WithAttributes(attributes...),
			)
		} else {
			errorCounter.Add(
				c.Request.Context(),
				1,
				metric.WithAttributes(attributes...),
			)
		}
	}
}
