package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhorky/librarium/internal/database/authors"
	"github.com/mhorky/librarium/internal/database/books"
)

type AuthorsController struct {
	store AuthorStore
	books BookStore
}

func NewAuthorsController(store AuthorStore, books BookStore) *AuthorsController {
	return &AuthorsController{
		store: store,
		books: books,
	}
}

// ListAuthors returns authors, optionally filtered by first_name/last_name
// substrings.
func (controller *AuthorsController) ListAuthors(c *gin.Context) {
	filter := authors.Filter{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
	}

	list, err := controller.store.List(filter)
	if err != nil {
		respondInternalError(c, err, "listing authors")
		return
	}
	c.JSON(http.StatusOK, list)
}

type createAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateAuthor inserts a new author and returns its assigned ID.
// Empty name strings are accepted; only NOT NULL is enforced.
func (controller *AuthorsController) CreateAuthor(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := controller.store.Create(req.FirstName, req.LastName)
	if err != nil {
		respondInternalError(c, err, "creating author")
		return
	}
	respondCreated(c, gin.H{"id": author.ID})
}

// AuthorDetailResponse combines an author with their books and the genre
// they publish in most often.
type AuthorDetailResponse struct {
	ID            uint               `json:"id"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	BooksCount    int                `json:"books_count"`
	Books         []books.AuthorBook `json:"books"`
	FavoriteGenre *string            `json:"favorite_genre"`
}

// GetAuthor composes three sequential reads: the author row, their books
// with genre names, and the favorite-genre aggregation. The reads are not
// wrapped in a snapshot; concurrent writes between them may show through.
func (controller *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := controller.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "author")
		return
	}
	if err != nil {
		respondInternalError(c, err, "fetching author")
		return
	}

	bookList, err := controller.books.ListByAuthor(id)
	if err != nil {
		respondInternalError(c, err, "listing author books")
		return
	}

	favorite, err := controller.books.FavoriteGenre(id)
	if err != nil {
		respondInternalError(c, err, "aggregating favorite genre")
		return
	}

	c.JSON(http.StatusOK, AuthorDetailResponse{
		ID:            author.ID,
		FirstName:     author.FirstName,
		LastName:      author.LastName,
		BooksCount:    len(bookList),
		Books:         bookList,
		FavoriteGenre: favorite,
	})
}
