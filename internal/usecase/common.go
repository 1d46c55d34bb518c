// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// Pagination carries page math shared by every listing output.
// Pages are 1-indexed; TotalPages = ceil(Total/limit).
type Pagination struct {
	Total       int64
	CurrentPage int
	TotalPages  int
}

// NewPagination normalizes page/limit and computes the page count.
func NewPagination(total int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}
