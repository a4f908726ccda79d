package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"guestbook/pkg/logger"
)

// registerStatic serves the front-end from dir under prefix. The index page
// answers the bare root; anything else must exist on disk or it is a 404.
func registerStatic(e *echo.Echo, prefix, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "static", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))
	if prefix != "" {
		fileServer = nethttp.StripPrefix(prefix, fileServer)
	}

	if prefix != "" {
		e.GET(prefix, func(c echo.Context) error {
			return c.Redirect(nethttp.StatusMovedPermanently, prefix+"/")
		})
	}

	e.GET(prefix+"/*", func(c echo.Context) error {
		requestPath := strings.TrimPrefix(c.Request().URL.Path, prefix)
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
		if cleanPath == "." || cleanPath == "" || cleanPath == "index.html" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err != nil || fileInfo.IsDir() {
			return echo.ErrNotFound
		}
		fileServer.ServeHTTP(c.Response(), c.Request())
		return nil
	})
}
