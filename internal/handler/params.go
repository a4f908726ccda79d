package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// CFConnectingIPHeader carries the visitor address behind Cloudflare.
const CFConnectingIPHeader = "CF-Connecting-IP"

// SourceIP returns the address a request is attributed to. Behind
// Cloudflare the CF-Connecting-IP header wins; without it, or when the
// header is missing, echo's RealIP is used.
func SourceIP(c echo.Context, cloudflare bool) string {
	if cloudflare {
		if ip := strings.TrimSpace(c.Request().Header.Get(CFConnectingIPHeader)); ip != "" {
			return ip
		}
	}
	return c.RealIP()
}

// reverseParam reports whether the listing should run oldest first. Any
// non-empty value counts, "false" included.
func reverseParam(c echo.Context) bool {
	return c.QueryParam("reverse") != ""
}
