package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"guestbook/docs"
	"guestbook/internal/handler"
	"guestbook/internal/metrics"
	"guestbook/pkg/logger"
)

// NotFoundMessage is the body of every 404.
const NotFoundMessage = "You have probably lost yourself... This page does not exist."

// Options configure the router.
type Options struct {
	// Root is the path prefix every guestbook route lives under, with a
	// leading and a trailing slash.
	Root      string
	StaticDir string
	Swagger   bool
	// Throttle is applied to the submission route when RPS is positive.
	Throttle ThrottleConfig
}

func NewRouter(
	guestbookHandler *handler.GuestbookHandler,
	feedHandler *handler.FeedHandler,
	opts Options,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	prefix := strings.TrimSuffix(opts.Root, "/")
	g := e.Group(prefix)

	var submit []echo.MiddlewareFunc
	if opts.Throttle.RPS > 0 {
		submit = append(submit, SubmitThrottle(opts.Throttle))
	}
	guestbookHandler.RegisterRoutes(g, submit...)
	feedHandler.RegisterRoutes(g)

	if opts.Swagger {
		docs.SwaggerInfo.BasePath = prefix + "/"
		g.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	registerStatic(e, prefix, opts.StaticDir)

	return e
}

// httpErrorHandler renders echo errors as the JSON error body the handlers
// use. Unknown routes get NotFoundMessage.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}
	if code == http.StatusNotFound {
		message = NotFoundMessage
	}
	if code >= http.StatusInternalServerError {
		logger.Error("unhandled error", "module", "http", "action", "error_handler", "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = handler.Error(c, code, message)
	}
	if err != nil {
		logger.Error("write error response", "module", "http", "error", err)
	}
}
