// Package pagination provides stateless windowing over ordered slices.
package pagination

// Window returns the pageIndex-th slice of items and the total page
// count. The helper does no clamping: callers must have validated
// 0 <= pageIndex < totalPages, and an out-of-range index simply yields
// an empty slice.
func Window[T any](items []T, pageSize, pageIndex int) ([]T, int) {
	if pageSize <= 0 {
		return nil, 0
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	start := pageIndex * pageSize
	if start < 0 || start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
