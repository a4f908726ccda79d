package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"guestbook/internal/handler"
	"guestbook/internal/hashutil"
	"guestbook/internal/metrics"
	"guestbook/pkg/logger"
)

// ThrottleConfig bounds how fast a single source may hit the submission
// endpoint. It sits in front of the admission rules and only protects the
// probes and the geo API from floods.
type ThrottleConfig struct {
	RPS        float64
	Burst      int
	ExpiresIn  time.Duration
	Cloudflare bool
	// Exempt reports addresses that bypass the throttle.
	Exempt func(ip string) bool
}

type throttleResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

const retryAfterSeconds = 1

// RequestIDMiddleware tags every request with a uuid in X-Request-ID.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLoggerMiddleware logs completed requests and feeds the HTTP
// collectors.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			route := v.RoutePath
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveHTTPRequest(v.Method, route, v.Status, v.Latency)

			args := []any{
				"module", "http",
				"action", "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				if v.Error != nil {
					args = append(args, "error", v.Error)
				}
				logger.Error("http request", args...)
			case v.Status >= http.StatusBadRequest:
				logger.Warn("http request", args...)
			default:
				logger.Info("http request", args...)
			}
			return nil
		},
	})
}

// SubmitThrottle is a per-source token bucket for the submission route.
func SubmitThrottle(cfg ThrottleConfig) echo.MiddlewareFunc {
	expires := cfg.ExpiresIn
	if expires <= 0 {
		expires = 3 * time.Minute
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     burst,
			ExpiresIn: expires,
		},
	)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			return cfg.Exempt != nil && cfg.Exempt(handler.SourceIP(c, cfg.Cloudflare))
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return handler.SourceIP(c, cfg.Cloudflare), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("submission throttled",
				"module", "http",
				"action", "throttle",
				"resource", "submit",
				"result", "denied",
				"source", hashutil.AddressDigest(identifier),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			return c.JSON(http.StatusTooManyRequests, throttleResponse{
				Error:      "too many requests",
				RetryAfter: retryAfterSeconds,
			})
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("submission throttle failed", "module", "http", "action", "throttle", "error", err)
			return handler.Error(c, http.StatusInternalServerError, "internal error")
		},
	})
}
