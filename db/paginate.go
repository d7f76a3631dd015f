package db

import "gorm.io/gorm"

const (
	DefaultPageSize = 15
	DefaultPage     = 1
)

// paginate limits a query to the 1-based page of size rows. Pages below 1 are treated as 1.
func paginate(page, size int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = DefaultPage
		}
		if size < 1 {
			size = DefaultPageSize
		}
		return db.Offset((page - 1) * size).Limit(size)
	}
}
