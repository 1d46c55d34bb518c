package postgres

import (
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePage clamps page/limit to their 1-indexed defaults.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return page, limit
}

// paginate applies 1-indexed page/limit to a query.
func paginate(query *gorm.DB, page, limit int) *gorm.DB {
	page, limit = normalizePage(page, limit)

	return query.Offset((page - 1) * limit).Limit(limit)
}

// likePattern wraps a search word for a case-insensitive contains match.
func likePattern(word string) string {
	return "%" + word + "%"
}
