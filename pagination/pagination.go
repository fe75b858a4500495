// Package pagination provides the page descriptor shared by the entity
// listing services.
package pagination

// DefaultLimit applies when callers omit or zero the page size.
const DefaultLimit = 20

// MaxLimit caps the page size to keep list responses bounded.
const MaxLimit = 100

// Meta describes one page of a filtered collection.
type Meta struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

// Normalize clamps page and limit into their valid ranges.
func Normalize(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// NewMeta derives the page descriptor for a total match count.
// Pages is ceil(total/limit).
func NewMeta(total, page, limit int) Meta {
	page, limit = Normalize(page, limit)
	pages := (total + limit - 1) / limit
	return Meta{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}
