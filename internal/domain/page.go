package domain

// Page is one page of a paginated listing. Page numbers start at 0.
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}

// TotalPages returns the number of pages needed to show Total items.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// HasNext reports whether another page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages()
}
