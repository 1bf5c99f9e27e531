package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhorky/librarium/internal/database/books"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// ListBooks returns books joined with author display names and genre names,
// filtered by the optional title/release_date/author/genre query parameters.
func (controller *BooksController) ListBooks(c *gin.Context) {
	filter := books.Filter{
		Title:       c.Query("title"),
		ReleaseDate: c.Query("release_date"),
		Author:      c.Query("author"),
		Genre:       c.Query("genre"),
	}

	list, err := controller.store.List(filter)
	if err != nil {
		respondInternalError(c, err, "listing books")
		return
	}
	c.JSON(http.StatusOK, list)
}

type createBookRequest struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	AuthorID    uint   `json:"author_id"`
	GenreID     uint   `json:"genre_id"`
}

// CreateBook inserts a new book and returns its assigned ID. Author and
// genre references are checked by the storage layer's foreign keys, not
// pre-validated here.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.store.Create(req.Title, req.ReleaseDate, req.AuthorID, req.GenreID)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		respondBadRequest(c, "author or genre does not exist")
		return
	}
	if err != nil {
		respondInternalError(c, err, "creating book")
		return
	}
	respondCreated(c, gin.H{"id": book.ID})
}
