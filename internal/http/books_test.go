package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhorky/librarium/internal/database/books"
)

func newBooksRouter(stores testStores) *gin.Engine {
	controller := NewBooksController(stores.books)
	router := gin.New()
	router.GET("/api/books", controller.ListBooks)
	router.POST("/api/books", controller.CreateBook)
	return router
}

func TestBooksController_ListBooks(t *testing.T) {
	t.Run("returns empty list when no books exist", func(t *testing.T) {
		_, stores, cleanup := setupTestDatabase(t)
		defer cleanup()

		router := newBooksRouter(stores)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("author filter returns matching rows with names filled in", func(t *testing.T) {
		_, stores, cleanup := setupTestDatabase(t)
		defer cleanup()

		orwell, err := stores.authors.Create("George", "Orwell")
		require.NoError(t, err)
		austen, err := stores.authors.Create("Jane", "Austen")
		require.NoError(t, err)
		genre, err := stores.genres.Create("Fiction")
		require.NoError(t, err)
		_, err = stores.books.Create("Animal Farm", "1945-08-17", orwell.ID, genre.ID)
		require.NoError(t, err)
		_, err = stores.books.Create("Emma", "1815-12-23", austen.ID, genre.ID)
		require.NoError(t, err)

		router := newBooksRouter(stores)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books?author=orwell", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rows []books.Row
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Animal Farm", rows[0].Title)
		assert.NotEmpty(t, rows[0].AuthorName)
		assert.NotEmpty(t, rows[0].GenreName)
	})
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("create then list by exact title round-trips all fields", func(t *testing.T) {
		_, stores, cleanup := setupTestDatabase(t)
		defer cleanup()

		author, err := stores.authors.Create("Mary", "Shelley")
		require.NoError(t, err)
		genre, err := stores.genres.Create("Gothic")
		require.NoError(t, err)

		router := newBooksRouter(stores)

		payload := fmt.Sprintf(`{"title": "Frankenstein", "release_date": "1818-01-01", "author_id": %d, "genre_id": %d}`, author.ID, genre.ID)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/books?title=Frankenstein", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rows []books.Row
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Frankenstein", rows[0].Title)
		assert.Equal(t, "1818-01-01", rows[0].ReleaseDate)
		assert.Equal(t, "Mary Shelley", rows[0].AuthorName)
		assert.Equal(t, "Gothic", rows[0].GenreName)
		assert.Equal(t, author.ID, rows[0].AuthorID)
		assert.Equal(t, genre.ID, rows[0].GenreID)
	})

	t.Run("dangling references respond with 400", func(t *testing.T) {
		_, stores, cleanup := setupTestDatabase(t)
		defer cleanup()

		router := newBooksRouter(stores)

		payload := `{"title": "Ghost Book", "release_date": "2000-01-01", "author_id": 9999, "genre_id": 9999}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		_, stores, cleanup := setupTestDatabase(t)
		defer cleanup()

		router := newBooksRouter(stores)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
