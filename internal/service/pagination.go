package service

import "github.com/msomdec/userdesk/internal/domain"

// Page is one page-sized slice of the user collection plus the cursor
// data the pagination controls need. It is derived, never stored.
type Page struct {
	Users      []domain.User
	Index      int
	PageSize   int
	TotalPages int
	TotalUsers int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Index > 0 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Index < p.TotalPages-1 }

// Paginate slices users for the given zero-based page index. The index
// is clamped into [0, totalPages-1]; navigation can never run out of
// range. TotalPages is recomputed from the live collection every call
// so it stays consistent after adds and deletes.
func Paginate(users []domain.User, index, size int) Page {
	if size < 1 {
		size = 1
	}
	total := len(users)
	totalPages := (total + size - 1) / size
	index = ClampPageIndex(index, totalPages)

	start := index * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Users:      users[start:end],
		Index:      index,
		PageSize:   size,
		TotalPages: totalPages,
		TotalUsers: total,
	}
}

// ClampPageIndex clamps index into [0, max(totalPages-1, 0)].
func ClampPageIndex(index, totalPages int) int {
	if index < 0 {
		return 0
	}
	if totalPages == 0 {
		return 0
	}
	if index > totalPages-1 {
		return totalPages - 1
	}
	return index
}
