// Package pagination implements the overfetch-by-one cursor page codec used
// by every list endpoint. Repositories fetch limit+1 rows; the codec decides
// whether a further page exists without a second existence query.
//
// The cursor is an opaque position marker taken from a previous response of
// the identical query (same filter, same ordering). It is never a page
// number: retrieval must seek strictly past the cursor row under a stable,
// unique ordering, here (created_at DESC, id DESC).
package pagination

// DefaultLimit applies when a caller sends no page size.
const DefaultLimit = 20

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Page is the envelope returned by list operations.
type Page[T any] struct {
	Data       []T     `json:"data"`
	NextCursor *string `json:"nextCursor"`
	HasMore    bool    `json:"hasMore"`
}

// ClampLimit normalizes a requested page size into [1, MaxLimit]; zero and
// negative values fall back to DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Slice folds an ordered result of up to limit+1 items into a page. When the
// input exceeds limit, it is truncated to the first limit items, HasMore is
// set and NextCursor is the identifier of the last kept item. limit must be
// positive; callers clamp it first (see ClampLimit).
func Slice[T any](items []T, limit int, id func(T) string) Page[T] {
	if len(items) <= limit {
		if items == nil {
			items = []T{}
		}
		return Page[T]{Data: items, NextCursor: nil, HasMore: false}
	}
	data := items[:limit]
	cursor := id(data[len(data)-1])
	return Page[T]{Data: data, NextCursor: &cursor, HasMore: true}
}
