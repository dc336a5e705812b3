package services

import (
	"math"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func PageSize() int {
	if size := viper.GetInt("pagination.page_size"); size > 0 {
		return size
	}
	return 10
}

// pageBounds clamps the requested page the way Django's get_page does:
// anything below one becomes the first page, anything past the end becomes
// the last page, and an empty set still has exactly one (empty) page.
func pageBounds(total int64, page, size int) (int, int) {
	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

func Paginate[T any](tx *gorm.DB, order any, page int) (Page[T], error) {
	size := PageSize()

	var out Page[T]
	var total int64
	if err := tx.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return out, err
	}

	number, totalPages := pageBounds(total, page, size)

	var items []T
	if err := tx.Session(&gorm.Session{}).
		Order(order).
		Limit(size).
		Offset((number - 1) * size).
		Find(&items).Error; err != nil {
		return out, err
	}

	return Page[T]{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}, nil
}
