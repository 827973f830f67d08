package listing

// PageSize is the fixed page size of every list view.
const PageSize = 10

// TotalPages returns ceil(count/PageSize), at least 1.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// ClampPage clamps a 1-indexed page number to [1, TotalPages(count)].
func ClampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if total := TotalPages(count); page > total {
		return total
	}
	return page
}

// Paginate slices out the given 1-indexed page after clamping. Concatenating
// pages 1..TotalPages reproduces the input exactly.
func Paginate(items []Item, page int) []Item {
	page = ClampPage(page, len(items))
	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
