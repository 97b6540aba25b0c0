package listing

// Paginate slices the filtered rows for display. page is zero-based; the
// returned total is the size of the whole filtered set, not the page. A page
// beyond the end yields an empty slice, never an error.
func Paginate[T any](rows []T, page, pageSize int) (pageRows []T, total int) {
	total = len(rows)
	if page < 0 || pageSize <= 0 {
		return nil, total
	}
	start := page * pageSize
	if start >= total {
		return nil, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return rows[start:end], total
}
