package dto

import "time"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// BaseFilter is the shared input for every listing operation. CreatedAt is
// honored by the user listing only.
type BaseFilter struct {
	PageNumber int
	PageSize   int
	Search     string
	CreatedAt  *time.Time
}

// Paging returns clamped pagination values: page is 1-based, size falls back
// to the default when out of range.
func (f BaseFilter) Paging() (page, size int) {
	page = f.PageNumber
	if page < 1 {
		page = 1
	}
	size = f.PageSize
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}
	return page, size
}
