package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/prismswap/swaprouter/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	corsConfig domain.CORSConfig
}

var (
	// total number of requests counter
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prismswap_router_requests_total",
			Help: "Total number of requests.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// request latency histogram
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prismswap_router_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", m.corsConfig.AllowedOrigin)
		c.Response().Header().Set("Access-Control-Allow-Headers", m.corsConfig.AllowedHeaders)
		c.Response().Header().Set("Access-Control-Allow-Methods", m.corsConfig.AllowedMethods)
		return next(c)
	}
}

// InitMiddleware initialize the middleware
func InitMiddleware(corsConfig *domain.CORSConfig) *GoMiddleware {
	return &GoMiddleware{
		corsConfig: *corsConfig,
	}
}

// InstrumentMiddleware counts requests by status and records their latency.
func (m *GoMiddleware) InstrumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestMethod := c.Request().Method
		requestPath, err := domain.ParseURLPath(c)
		if err != nil {
			return err
		}

		ctx := context.WithValue(c.Request().Context(), domain.RequestPathCtxKey, requestPath)
		c.SetRequest(c.Request().WithContext(ctx))

		err = next(c)

		status := c.Response().Status
		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
		}

		requestsTotal.WithLabelValues(requestMethod, requestPath, strconv.Itoa(status)).Inc()
		requestLatency.WithLabelValues(requestMethod, requestPath).Observe(time.Since(start).Seconds())

		return err
	}
}

// TraceWithParamsMiddleware starts a server span per request and attaches the query parameters to it.
func (m *GoMiddleware) TraceWithParamsMiddleware(tracerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tracer := otel.Tracer(tracerName)

			parentCtx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

			// The span ends when the request is complete
			ctx, span := tracer.Start(parentCtx, c.Path(), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(attribute.String("http.method", c.Request().Method))

			c.SetRequest(c.Request().WithContext(ctx))

			// Only the first value of each parameter is recorded.
			for key, values := range c.QueryParams() {
				span.SetAttributes(attribute.String(key, values[0]))
			}

			err := next(c)

			status := c.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= 500 {
				span.SetStatus(codes.Error, strconv.Itoa(status))
			}

			return err
		}
	}
}
