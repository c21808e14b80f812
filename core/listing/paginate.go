// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package listing

// Page sizes of the paginated sections.
const (
	ResearchPageSize = 10
	ProjectsPageSize = 6
	GalleryPageSize  = 8
)

// Page is one bounded window over a list.
type Page[T any] struct {
	// Items is the visible slice. It aliases the input slice.
	Items []T
	// Current is the zero-based index of this page, always in [0, TotalPages).
	Current    int
	TotalPages int
	// Total is the length of the whole list.
	Total int
	Size  int
}

// Paginate returns page p of items using page size size.
//
// TotalPages is max(1, ceil(N/size)) and p is clamped into [0, TotalPages),
// so an out-of-range index selects the nearest valid page instead of failing.
// A size below 1 is treated as 1.
func Paginate[T any](items []T, p, size int) Page[T] {
	size = max(size, 1)
	n := len(items)

	totalPages := max(1, (n+size-1)/size)
	current := min(max(p, 0), totalPages-1)

	start := current * size
	end := min(n, start+size)

	return Page[T]{
		Items:      items[start:end:end],
		Current:    current,
		TotalPages: totalPages,
		Total:      n,
		Size:       size,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Current > 0
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Current < p.TotalPages-1
}

// Prev returns the index of the previous page, or the current index on the first page.
func (p Page[T]) Prev() int {
	return max(p.Current-1, 0)
}

// Next returns the index of the next page, or the current index on the last page.
func (p Page[T]) Next() int {
	return min(p.Current+1, p.TotalPages-1)
}

// ShowControls reports whether pagination controls belong on the page.
// They are shown only when the list does not fit on one page.
func (p Page[T]) ShowControls() bool {
	return p.Total > p.Size
}
