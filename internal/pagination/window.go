// Package pagination computes which slice of the guestbook a listing shows
// and which page links surround it. Everything here is pure.
package pagination

import (
	"strconv"
	"strings"

	"guestbook/internal/model"
)

// LinkWidth is the maximum number of page links shown around the current page.
const LinkWidth = 10

// Window describes one listing page.
type Window struct {
	Page       int
	TotalPages int
	PageSize   int
	Order      model.Order
	Offset     int
	Limit      int
	// LinkStart..LinkEnd is the inclusive range of page links; empty when
	// LinkEnd < LinkStart.
	LinkStart int
	LinkEnd   int
}

// Pages lists the page numbers of the link window.
func (w Window) Pages() []int {
	if w.LinkEnd < w.LinkStart {
		return nil
	}
	pages := make([]int, 0, w.LinkEnd-w.LinkStart+1)
	for p := w.LinkStart; p <= w.LinkEnd; p++ {
		pages = append(pages, p)
	}
	return pages
}

// New builds the window for total rows, a page size, the raw page query
// value and the reverse flag.
//
// A page beyond the last one is replaced by the total row count, not by the
// last page. Older clients depend on that, so it is kept on purpose; the
// offset is still clamped at zero and the link window stays in range.
func New(total, pageSize int, rawPage string, reverse bool) Window {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	totalPages := TotalPages(total, pageSize)
	page := ClampPage(rawPage, total, totalPages)

	order := model.OrderDesc
	if reverse {
		order = model.OrderAsc
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	start, end := Links(page, totalPages, LinkWidth)
	return Window{
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
		Order:      order,
		Offset:     offset,
		Limit:      pageSize,
		LinkStart:  start,
		LinkEnd:    end,
	}
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage resolves the requested page: beyond totalPages it becomes total,
// missing, non-numeric or below one it becomes 1.
func ClampPage(rawPage string, total, totalPages int) int {
	page := 1
	if trimmed := strings.TrimSpace(rawPage); trimmed != "" {
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 1
		}
		page = parsed
	}
	if page > totalPages {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}

// Links returns the inclusive range of page links for page. The window
// starts half a width before page, is at most width long, is shifted back
// when it would end too close to page, and never leaves [1, totalPages].
func Links(page, totalPages, width int) (start, end int) {
	if totalPages < 1 || width < 1 {
		return 1, 0
	}
	half := width / 2

	start = max(1, page-half)
	end = min(totalPages, start+width-1)
	if want := page + half - 1; end < want {
		start -= want - end
	}
	start = max(start, 1, end-width+1)
	return start, end
}
