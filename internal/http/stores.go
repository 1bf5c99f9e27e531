package http

import (
	"github.com/mhorky/librarium/internal/database/authors"
	"github.com/mhorky/librarium/internal/database/books"
	"github.com/mhorky/librarium/internal/entities"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller receives only the interface it needs; the
// concrete implementations live under internal/database.

// AuthorStore provides access to author records.
type AuthorStore interface {
	List(filter authors.Filter) ([]entities.Author, error)
	Create(firstName, lastName string) (*entities.Author, error)
	GetByID(id uint) (*entities.Author, error)
}

// GenreStore provides access to genre records.
type GenreStore interface {
	List() ([]entities.Genre, error)
	Create(name string) (*entities.Genre, error)
}

// BookStore provides access to book records and their joined projections.
type BookStore interface {
	List(filter books.Filter) ([]books.Row, error)
	ListByAuthor(authorID uint) ([]books.AuthorBook, error)
	FavoriteGenre(authorID uint) (*string, error)
	Create(title, releaseDate string, authorID, genreID uint) (*entities.Book, error)
}
