package book

import (
	"gorm.io/gorm"
)

// Store exposes the ordered book collection to the paginator.
type Store interface {
	// ListPage returns up to limit books after skipping skip entries of
	// the feed order: created_at descending, id descending as tie-break
	// so the order is total and stable across fetches.
	ListPage(skip, limit int) ([]Book, error)
	Count() (int64, error)
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) ListPage(skip, limit int) ([]Book, error) {
	var books []Book
	err := s.DB.
		Preload("User").
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (s *GormStore) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&Book{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
