// Package genres provides database operations for genre records.
//
// This package implements the GenreStore interface defined in internal/http/stores.go.
package genres

import (
	"gorm.io/gorm"

	"github.com/mhorky/librarium/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all genres in storage order.
func (r *Repository) List() ([]entities.Genre, error) {
	genres := make([]entities.Genre, 0)
	err := r.db.Find(&genres).Error
	return genres, err
}

// Create inserts a new genre. Genre names are unique; inserting a
// duplicate returns gorm.ErrDuplicatedKey.
func (r *Repository) Create(name string) (*entities.Genre, error) {
	genre := &entities.Genre{Name: name}
	if err := r.db.Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}
