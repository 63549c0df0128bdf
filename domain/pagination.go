package domain

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListWindow describes the requested result window of a listing: either
// page mode (Page > 0) or cursor mode. When both a page and a cursor are
// supplied, page mode wins; the cursor is ignored. This is a first-class
// rule of the listing contract, not a fallback.
type ListWindow struct {
	Page   int64  // 1-based; zero means cursor mode
	Cursor string // opaque cursor, empty means start of collection
	Limit  int64
	SortBy string
	Order  SortOrder
}

// PageMode reports whether the window selects page-based iteration.
func (w ListWindow) PageMode() bool {
	return w.Page > 0
}

// ClampedLimit normalizes Limit into [1, MaxPageLimit], applying the
// default when unset. A non-positive limit is clamped, never rejected.
func (w ListWindow) ClampedLimit() int64 {
	switch {
	case w.Limit <= 0:
		return DefaultPageLimit
	case w.Limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return w.Limit
	}
}

// Desc reports whether the window iterates in descending order. It is the
// default direction for moderation listings (newest first).
func (w ListWindow) Desc() bool {
	return w.Order != SortAsc
}

// PageInfo is the window metadata returned with every listing.
type PageInfo struct {
	Total      int64  `json:"total"`
	Page       int64  `json:"page,omitempty"`
	TotalPages int64  `json:"total_pages,omitempty"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// NewPagePageInfo computes page-mode metadata from the requested page,
// the limit and the total count. A non-positive limit falls back to the
// default so the page arithmetic never divides by zero.
func NewPagePageInfo(page, limit, total int64) PageInfo {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return PageInfo{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// NewCursorPageInfo computes cursor-mode metadata. nextCursor is empty
// when the window is empty or the collection is exhausted.
func NewCursorPageInfo(total int64, nextCursor string, hasNext bool) PageInfo {
	if !hasNext {
		nextCursor = ""
	}
	return PageInfo{
		Total:      total,
		HasNext:    hasNext,
		NextCursor: nextCursor,
	}
}
