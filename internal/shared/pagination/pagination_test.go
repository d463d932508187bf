package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	req := Parse("", "")
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, DefaultSize, req.Size)
}

func TestParse_ClampsAndIgnoresGarbage(t *testing.T) {
	req := Parse("-3", "nope")
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, DefaultSize, req.Size)

	req = Parse("2", "500")
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, MaxSize, req.Size)
}

func TestRequest_Offset(t *testing.T) {
	req := Request{Page: 3, Size: 10}
	assert.Equal(t, 30, req.Offset())
	assert.Equal(t, 10, req.Limit())
}

func TestNewPage_TotalPages(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, Request{Page: 0, Size: 3}, 7)
	assert.Equal(t, 3, len(page.Content))
	assert.Equal(t, int64(7), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewPage_EmptyContentIsNotNil(t *testing.T) {
	page := NewPage[int](nil, Request{}, 0)
	require.NotNil(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
}

func TestSlice_Windows(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}

	window, total := Slice(list, Request{Page: 1, Size: 2})
	assert.Equal(t, []string{"c", "d"}, window)
	assert.Equal(t, int64(5), total)

	window, total = Slice(list, Request{Page: 4, Size: 2})
	assert.Empty(t, window)
	assert.Equal(t, int64(5), total)
}

func TestMap_PreservesMetadata(t *testing.T) {
	page := NewPage([]int{1, 2}, Request{Page: 1, Size: 2}, 4)
	mapped := Map(page, func(v int) int { return v * 10 })
	assert.Equal(t, []int{10, 20}, mapped.Content)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
	assert.Equal(t, page.Page, mapped.Page)
}
