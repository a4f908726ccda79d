package pagination_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestbook/internal/model"
	"guestbook/internal/pagination"
)

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, pagination.TotalPages(0, 10))
	require.Equal(t, 1, pagination.TotalPages(1, 10))
	require.Equal(t, 1, pagination.TotalPages(10, 10))
	require.Equal(t, 3, pagination.TotalPages(25, 10))
	require.Equal(t, 0, pagination.TotalPages(25, 0))
}

func TestNew_PageResolution(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		rawPage string
		want    int
	}{
		{"absent", 25, "", 1},
		{"zero", 25, "0", 1},
		{"negative", 25, "-3", 1},
		{"non-numeric", 25, "abc", 1},
		{"padded", 25, " 2 ", 2},
		{"last", 25, "3", 3},
		{"beyond total uses row count", 25, "4", 25},
		{"empty guestbook", 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := pagination.New(tt.total, 10, tt.rawPage, false)
			assert.Equal(t, tt.want, w.Page)
			assert.GreaterOrEqual(t, w.Offset, 0)
		})
	}
}

func TestNew_OffsetAndOrder(t *testing.T) {
	w := pagination.New(25, 10, "2", false)
	require.Equal(t, 10, w.Offset)
	require.Equal(t, 10, w.Limit)
	require.Equal(t, 3, w.TotalPages)
	require.Equal(t, model.OrderDesc, w.Order)

	w = pagination.New(25, 10, "1", true)
	require.Equal(t, 0, w.Offset)
	require.Equal(t, model.OrderAsc, w.Order)

	w = pagination.New(0, 10, "", false)
	require.Equal(t, 0, w.Offset)
	require.Equal(t, 0, w.TotalPages)
	require.Empty(t, w.Pages())
}

func TestNew_BeyondTotalOffset(t *testing.T) {
	w := pagination.New(25, 10, "99", false)
	require.Equal(t, 25, w.Page)
	require.Equal(t, 240, w.Offset)
	require.Equal(t, []int{1, 2, 3}, w.Pages())
}

func TestLinks(t *testing.T) {
	tests := []struct {
		page, totalPages int
		start, end       int
	}{
		{1, 1, 1, 1},
		{1, 3, 1, 3},
		{1, 100, 1, 10},
		{7, 100, 2, 11},
		{50, 100, 45, 54},
		{100, 100, 91, 100},
		{98, 100, 91, 100},
		{25, 3, 1, 3},
	}
	for _, tt := range tests {
		start, end := pagination.Links(tt.page, tt.totalPages, pagination.LinkWidth)
		assert.Equal(t, tt.start, start, "start page=%d total=%d", tt.page, tt.totalPages)
		assert.Equal(t, tt.end, end, "end page=%d total=%d", tt.page, tt.totalPages)
	}
}

func TestLinks_Empty(t *testing.T) {
	start, end := pagination.Links(0, 0, pagination.LinkWidth)
	require.Less(t, end, start)
}

func TestLinks_StayInRange(t *testing.T) {
	for totalPages := 1; totalPages <= 30; totalPages++ {
		for page := 1; page <= totalPages+2; page++ {
			t.Run(fmt.Sprintf("%d/%d", page, totalPages), func(t *testing.T) {
				start, end := pagination.Links(page, totalPages, pagination.LinkWidth)
				require.GreaterOrEqual(t, start, 1)
				require.LessOrEqual(t, end, totalPages)
				require.LessOrEqual(t, end-start+1, pagination.LinkWidth)
				require.LessOrEqual(t, start, end)
			})
		}
	}
}
