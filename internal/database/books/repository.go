// Package books provides database operations for book records, including
// the joined listings that carry denormalized author and genre names.
//
// This package implements the BookStore interface defined in internal/http/stores.go.
package books

import (
	"gorm.io/gorm"

	"github.com/mhorky/librarium/internal/entities"
)

// Filter holds optional filters for book listing. Title, Author and Genre
// are case-insensitive substring matches; ReleaseDate is an exact match.
// Empty fields add no condition.
type Filter struct {
	Title       string
	ReleaseDate string
	Author      string
	Genre       string
}

// Row is a book joined with its author's display name and genre name.
type Row struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	AuthorID    uint   `json:"author_id"`
	GenreID     uint   `json:"genre_id"`
	AuthorName  string `json:"author_name"`
	GenreName   string `json:"genre_name"`
}

// AuthorBook is a book of a known author, enriched with its genre name.
type AuthorBook struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	AuthorID    uint   `json:"author_id"`
	GenreID     uint   `json:"genre_id"`
	GenreName   string `json:"genre_name"`
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns books joined with authors and genres, filtered per the
// Filter contract. The author filter matches either name part, so it needs
// explicit parentheses to keep the OR from leaking into the AND chain.
func (r *Repository) List(filter Filter) ([]Row, error) {
	rows := make([]Row, 0)
	tx := r.db.Model(&entities.Book{}).
		Select("books.id, books.title, books.release_date, books.author_id, books.genre_id, " +
			"authors.first_name || ' ' || authors.last_name AS author_name, " +
			"genres.name AS genre_name").
		Joins("JOIN authors ON authors.id = books.author_id").
		Joins("JOIN genres ON genres.id = books.genre_id")

	if filter.Title != "" {
		tx = tx.Where("LOWER(books.title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.ReleaseDate != "" {
		tx = tx.Where("books.release_date = ?", filter.ReleaseDate)
	}
	if filter.Author != "" {
		pattern := "%" + filter.Author + "%"
		tx = tx.Where("(LOWER(authors.first_name) LIKE LOWER(?) OR LOWER(authors.last_name) LIKE LOWER(?))", pattern, pattern)
	}
	if filter.Genre != "" {
		tx = tx.Where("LOWER(genres.name) LIKE LOWER(?)", "%"+filter.Genre+"%")
	}

	err := tx.Scan(&rows).Error
	return rows, err
}

// ListByAuthor returns all books of the given author, each with its genre name.
func (r *Repository) ListByAuthor(authorID uint) ([]AuthorBook, error) {
	books := make([]AuthorBook, 0)
	err := r.db.Model(&entities.Book{}).
		Select("books.id, books.title, books.release_date, books.author_id, books.genre_id, genres.name AS genre_name").
		Joins("JOIN genres ON genres.id = books.genre_id").
		Where("books.author_id = ?", authorID).
		Scan(&books).Error
	return books, err
}

// FavoriteGenre returns the name of the genre appearing most often among
// the author's books, or nil when the author has none. Ties fall to the
// grouping order of the storage engine.
func (r *Repository) FavoriteGenre(authorID uint) (*string, error) {
	var row struct {
		Name  string
		Count int64
	}
	result := r.db.Model(&entities.Book{}).
		Select("genres.name AS name, COUNT(*) AS count").
		Joins("JOIN genres ON genres.id = books.genre_id").
		Where("books.author_id = ?", authorID).
		Group("books.genre_id").
		Order("count DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row.Name, nil
}

// Create inserts a new book. References are not pre-validated; a dangling
// author or genre ID returns gorm.ErrForeignKeyViolated from the storage
// layer.
func (r *Repository) Create(title, releaseDate string, authorID, genreID uint) (*entities.Book, error) {
	book := &entities.Book{
		Title:       title,
		ReleaseDate: releaseDate,
		AuthorID:    authorID,
		GenreID:     genreID,
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}
