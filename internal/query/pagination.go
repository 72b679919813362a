package query

// Window is a safe, clamped pagination window over a known total.
type Window struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Offset     int
}

// Paginate computes the window for a requested page over total records.
// pageSize is clamped to at least 1 and the page is clamped into
// [1, totalPages], so the offset never falls outside the result set even
// when the requested page is zero, negative or past the end.
func Paginate(total, requestedPage, pageSize int) Window {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Window{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
	}
}
