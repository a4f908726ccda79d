package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"guestbook/internal/service"
)

const mimeRSS = "application/rss+xml; charset=utf-8"

type FeedHandler struct {
	service service.FeedService
}

func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rss", h.RSS)
}

// RSS godoc
// @Summary RSS feed of all entries
// @Tags feed
// @Produce xml
// @Success 200 {string} string "RSS 2.0 document"
// @Failure 500 {object} errorResponse
// @Router /rss [get]
func (h *FeedHandler) RSS(c echo.Context) error {
	rss, err := h.service.Build(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	body, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return Error(c, http.StatusInternalServerError, "internal error")
	}
	return c.Blob(http.StatusOK, mimeRSS, append([]byte(xml.Header), body...))
}
