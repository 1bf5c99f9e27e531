package http

import (
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/database/authors"
	"github.com/mhorky/librarium/internal/database/books"
	"github.com/mhorky/librarium/internal/database/genres"
)

type testStores struct {
	authors *authors.Repository
	genres  *genres.Repository
	books   *books.Repository
}

func setupTestDatabase(t *testing.T) (*database.Database, testStores, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_catalog_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	stores := testStores{
		authors: authors.NewRepository(db.DB),
		genres:  genres.NewRepository(db.DB),
		books:   books.NewRepository(db.DB),
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, stores, cleanup
}
