package paginator

// Page is one fixed-size slice of a larger sequence.
type Page[T any] struct {
	Items       []T
	Number      int
	Size        int
	TotalCount  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// Paginate returns page number (1-based) of items. Invalid numbers mean page 1,
// numbers past the last page yield an empty page.
func Paginate[T any](items []T, number, size int) Page[T] {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 1
	}
	total := len(items)
	page := Page[T]{
		Items:      []T{},
		Number:     number,
		Size:       size,
		TotalCount: total,
		TotalPages: (total + size - 1) / size,
	}
	page.HasPrevious = number > 1
	page.HasNext = number < page.TotalPages

	if number > page.TotalPages {
		return page
	}
	offset := (number - 1) * size
	end := offset + size
	if end > total {
		end = total
	}
	page.Items = items[offset:end]
	return page
}
