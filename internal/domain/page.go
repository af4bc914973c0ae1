package domain

// DefaultPageSize is used when a caller asks for a non-positive page size.
const DefaultPageSize = 10

// Page is the paginated list envelope: {content, totalElements, totalPages, currentPage}.
type Page[T any] struct {
	Content       []T
	TotalElements int
	TotalPages    int
	CurrentPage   int
}

// NormalizePaging clamps page to >= 0 and replaces a non-positive size with DefaultPageSize.
func NormalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return page, size
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// Paginate slices items into the page [page*size, (page+1)*size).
// Out-of-range pages yield empty content, never an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	page, size = NormalizePaging(page, size)
	out := Page[T]{
		Content:       []T{},
		TotalElements: len(items),
		TotalPages:    TotalPages(len(items), size),
		CurrentPage:   page,
	}
	// Compare page counts rather than offsets: page*size may overflow.
	if page >= out.TotalPages {
		return out
	}
	start := page * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	out.Content = append(out.Content, items[start:end]...)
	return out
}
