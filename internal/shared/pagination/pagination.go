// Package pagination provides page/size request handling and a generic
// page envelope shared by the list endpoints.
package pagination

import "strconv"

const (
	// DefaultSize is applied when the caller omits the size parameter.
	DefaultSize = 20
	// MaxSize caps the number of records a single page may carry.
	MaxSize = 100
)

// Request carries the zero-based page index and the page size.
type Request struct {
	Page int
	Size int
}

// Parse builds a Request from raw query values, tolerating absent or
// malformed input by falling back to defaults.
func Parse(pageRaw, sizeRaw string) Request {
	req := Request{Page: 0, Size: DefaultSize}
	if page, err := strconv.Atoi(pageRaw); err == nil && page > 0 {
		req.Page = page
	}
	if size, err := strconv.Atoi(sizeRaw); err == nil && size > 0 {
		req.Size = size
	}
	return req.Normalize()
}

// Normalize clamps the request into valid bounds.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

// Offset returns the number of records to skip.
func (r Request) Offset() int {
	r = r.Normalize()
	return r.Page * r.Size
}

// Limit returns the maximum number of records to fetch.
func (r Request) Limit() int {
	return r.Normalize().Size
}

// Page is the envelope returned by paginated list operations.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page envelope from fetched content and the total count.
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	req = req.Normalize()
	if content == nil {
		content = []T{}
	}
	pages := 0
	if total > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Map converts a page of one content type into another, preserving metadata.
func Map[T, U any](page Page[T], convert func(T) U) Page[U] {
	content := make([]U, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, convert(item))
	}
	return Page[U]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// Slice applies the request window to an in-memory list and returns the
// window plus the total length. Used by the memory adapters.
func Slice[T any](list []T, req Request) ([]T, int64) {
	req = req.Normalize()
	total := int64(len(list))
	start := req.Offset()
	if start >= len(list) {
		return []T{}, total
	}
	end := start + req.Size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], total
}
