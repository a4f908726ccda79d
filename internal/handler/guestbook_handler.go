package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"guestbook/internal/model"
	"guestbook/internal/service"
	"guestbook/pkg/sanitizer"
)

// SiteInfo is the static configuration published by /api/info.
type SiteInfo struct {
	SiteTitle     string
	Root          string
	Permalink     string
	FaviconAPI    string
	MaxCommentLen int
	MaxNameLen    int
	MaxSiteLen    int
	HoursPerPost  int
	PostsPerPage  int
	ShowStatus    bool
	Cloudflare    bool
}

type GuestbookHandler struct {
	guestbook service.GuestbookService
	admission service.AdmissionService
	info      SiteInfo
}

type submitRequest struct {
	Name    string `json:"name" form:"name"`
	Website string `json:"website" form:"website"`
	Comment string `json:"comment" form:"comment"`
}

type entryResponse struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	DisplayName string  `json:"displayName"`
	Website     *string `json:"website"`
	Country     *string `json:"country"`
	Comment     string  `json:"comment"`
	Date        string  `json:"date"`
}

type paginationResponse struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	PageSize   int    `json:"pageSize"`
	Total      int    `json:"total"`
	Order      string `json:"order"`
	Links      []int  `json:"links"`
}

type entryListResponse struct {
	Entries    []entryResponse    `json:"entries"`
	Pagination paginationResponse `json:"pagination"`
}

type submitResponse struct {
	Message string         `json:"message"`
	Entry   *entryResponse `json:"entry,omitempty"`
}

type websiteStatusResponse struct {
	Website   string `json:"website"`
	Alive     bool   `json:"alive"`
	CheckedAt string `json:"checkedAt"`
}

type statsResponse struct {
	TotalPosts    int                     `json:"totalPosts"`
	UniqueSources int                     `json:"uniqueSources"`
	Websites      []string                `json:"websites"`
	Names         []string                `json:"names"`
	Countries     map[string]int          `json:"countries"`
	Status        []websiteStatusResponse `json:"status,omitempty"`
}

type infoResponse struct {
	SiteTitle      string `json:"siteTitle"`
	Root           string `json:"root"`
	Permalink      string `json:"permalink"`
	FaviconAPI     string `json:"faviconApi"`
	MaxCommentLen  int    `json:"maxCommentLen"`
	MaxNameLen     int    `json:"maxNameLen"`
	MaxSiteLen     int    `json:"maxSiteLen"`
	HoursPerPost   int    `json:"hoursPerPost"`
	PostsPerPage   int    `json:"postsPerPage"`
	NamePattern    string `json:"namePattern"`
	WebsitePattern string `json:"websitePattern"`
	ShowStatus     bool   `json:"showStatus"`
}

func NewGuestbookHandler(guestbook service.GuestbookService, admission service.AdmissionService, info SiteInfo) *GuestbookHandler {
	return &GuestbookHandler{guestbook: guestbook, admission: admission, info: info}
}

// RegisterRoutes mounts the guestbook endpoints. submit wraps only the
// submission route.
func (h *GuestbookHandler) RegisterRoutes(g *echo.Group, submit ...echo.MiddlewareFunc) {
	g.GET("/api/entries", h.List)
	g.POST("/submit", h.Submit, submit...)
	g.GET("/api/stats", h.Stats)
	g.GET("/api/info", h.Info)
}

// List godoc
// @Summary List guestbook entries
// @Description Newest first unless reverse is set. Pages beyond the last one resolve to the total entry count.
// @Tags guestbook
// @Produce json
// @Param page query string false "Page number"
// @Param reverse query string false "Any value lists oldest first"
// @Success 200 {object} entryListResponse
// @Failure 500 {object} errorResponse
// @Router /api/entries [get]
func (h *GuestbookHandler) List(c echo.Context) error {
	page, err := h.guestbook.List(c.Request().Context(), c.QueryParam("page"), reverseParam(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	entries := make([]entryResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		entries = append(entries, toEntryResponse(e))
	}
	links := page.Window.Pages()
	if links == nil {
		links = []int{}
	}
	return c.JSON(http.StatusOK, entryListResponse{
		Entries: entries,
		Pagination: paginationResponse{
			Page:       page.Window.Page,
			TotalPages: page.Window.TotalPages,
			PageSize:   page.Window.PageSize,
			Total:      page.Total,
			Order:      string(page.Window.Order),
			Links:      links,
		},
	})
}

// Submit godoc
// @Summary Submit a guestbook entry
// @Tags guestbook
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body submitRequest true "Entry"
// @Success 201 {object} submitResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} rejectionResponse
// @Failure 500 {object} errorResponse
// @Router /submit [post]
func (h *GuestbookHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	verdict, err := h.admission.Submit(c.Request().Context(), model.Submission{
		Name:    req.Name,
		Website: req.Website,
		Comment: req.Comment,
		IP:      SourceIP(c, h.info.Cloudflare),
		At:      time.Now().UTC(),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	if !verdict.Accepted {
		return c.JSON(http.StatusUnprocessableEntity, rejectionResponse{
			Error:  verdict.Message,
			Reason: string(verdict.Reason),
		})
	}

	resp := submitResponse{Message: verdict.Message}
	if verdict.Entry != nil {
		entry := toEntryResponse(*verdict.Entry)
		resp.Entry = &entry
	}
	return c.JSON(http.StatusCreated, resp)
}

// Stats godoc
// @Summary Guestbook statistics
// @Tags guestbook
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {object} errorResponse
// @Router /api/stats [get]
func (h *GuestbookHandler) Stats(c echo.Context) error {
	stats, err := h.guestbook.Stats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := statsResponse{
		TotalPosts:    stats.TotalPosts,
		UniqueSources: stats.UniqueSources,
		Websites:      nonNil(stats.Websites),
		Names:         nonNil(stats.Names),
		Countries:     stats.Countries,
	}
	if resp.Countries == nil {
		resp.Countries = map[string]int{}
	}
	for _, s := range stats.Status {
		resp.Status = append(resp.Status, websiteStatusResponse{
			Website:   s.Website,
			Alive:     s.Alive,
			CheckedAt: s.CheckedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Info godoc
// @Summary Site configuration
// @Description Limits and validation patterns, for clients that validate before submitting.
// @Tags guestbook
// @Produce json
// @Success 200 {object} infoResponse
// @Router /api/info [get]
func (h *GuestbookHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, infoResponse{
		SiteTitle:      h.info.SiteTitle,
		Root:           h.info.Root,
		Permalink:      h.info.Permalink,
		FaviconAPI:     h.info.FaviconAPI,
		MaxCommentLen:  h.info.MaxCommentLen,
		MaxNameLen:     h.info.MaxNameLen,
		MaxSiteLen:     h.info.MaxSiteLen,
		HoursPerPost:   h.info.HoursPerPost,
		PostsPerPage:   h.info.PostsPerPage,
		NamePattern:    service.NamePattern,
		WebsitePattern: service.WebsitePattern,
		ShowStatus:     h.info.ShowStatus,
	})
}

func toEntryResponse(e model.Entry) entryResponse {
	return entryResponse{
		ID:          itoa(e.ID),
		Name:        e.Name,
		DisplayName: sanitizer.DisplayName(e.Name),
		Website:     e.Website,
		Country:     e.Country,
		Comment:     e.Comment,
		Date:        e.Date.UTC().Format(time.RFC3339),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
