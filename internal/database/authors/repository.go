// Package authors provides database operations for author records.
//
// This package implements the AuthorStore interface defined in internal/http/stores.go.
package authors

import (
	"gorm.io/gorm"

	"github.com/mhorky/librarium/internal/entities"
)

// Filter holds optional substring filters for author listing.
// Empty fields add no condition.
type Filter struct {
	FirstName string
	LastName  string
}

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns authors matching the filter. Present fields are matched as
// case-insensitive substrings and combined with AND; with no filter the
// whole table is returned in storage order.
func (r *Repository) List(filter Filter) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	tx := r.db.Model(&entities.Author{})
	if filter.FirstName != "" {
		tx = tx.Where("LOWER(first_name) LIKE LOWER(?)", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		tx = tx.Where("LOWER(last_name) LIKE LOWER(?)", "%"+filter.LastName+"%")
	}
	err := tx.Find(&authors).Error
	return authors, err
}

// Create inserts a new author. Empty names are legal; the storage layer
// only enforces NOT NULL.
func (r *Repository) Create(firstName, lastName string) (*entities.Author, error) {
	author := &entities.Author{
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// GetByID retrieves an author by ID. gorm.ErrRecordNotFound is returned
// unchanged so callers can map it to a not-found response.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
