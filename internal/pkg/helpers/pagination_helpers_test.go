package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page falls back to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative page falls back to first", page: -5, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized page size is capped to default", page: 1, size: 5000, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(c.page, c.size)
			assert.Equal(t, c.wantOffset, offset)
			assert.Equal(t, c.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(42), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Equal(t, int64(0), empty.TotalItems)

	beyond := NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, beyond.CurrentPage, "current page clamps to the last page")
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(query string) (int, int) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/events"+query, nil)
		return ParsePaginationParams(c)
	}

	page, size := parse("")
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)

	page, size = parse("?page=3&pageSize=25")
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	page, size = parse("?page=abc&pageSize=-1")
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)

	page, size = parse("?pageSize=101")
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)
}
