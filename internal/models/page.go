package models

// Pagination bounds
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Page is a validated offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

// NewPage clamps offset to >= 0 and limit to [1, MaxLimit].
func NewPage(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if limit < 1 {
		limit = 1
	}
	return Page{Offset: offset, Limit: limit}
}
