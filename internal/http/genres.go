package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

// ListGenres returns all genres.
func (controller *GenresController) ListGenres(c *gin.Context) {
	list, err := controller.store.List()
	if err != nil {
		respondInternalError(c, err, "listing genres")
		return
	}
	c.JSON(http.StatusOK, list)
}

type createGenreRequest struct {
	Name string `json:"name"`
}

// CreateGenre inserts a new genre and returns its assigned ID. Genre names
// are unique; a duplicate responds with 409.
func (controller *GenresController) CreateGenre(c *gin.Context) {
	var req createGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genre, err := controller.store.Create(req.Name)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		respondConflict(c, "genre already exists")
		return
	}
	if err != nil {
		respondInternalError(c, err, "creating genre")
		return
	}
	respondCreated(c, gin.H{"id": genre.ID})
}
