package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/demo"
)

// RouterConfig carries all dependencies the router needs. Using a struct
// keeps NewRouter's signature stable as wiring grows.
type RouterConfig struct {
	AuthorStore AuthorStore
	GenreStore  GenreStore
	BookStore   BookStore

	Database      *database.Database
	TemplatesPath string
	StaticPath    string
	Version       string

	DemoMiddleware *demo.Middleware
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Demo mode blocks write operations before they reach any controller
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)
	router.Static("/static", cfg.StaticPath)

	uiController := NewUIController(cfg.Version)
	router.GET("/", uiController.IndexPage)

	healthController := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.AuthorStore, cfg.BookStore)
	genresController := NewGenresController(cfg.GenreStore)
	booksController := NewBooksController(cfg.BookStore)

	api := router.Group("/api")
	{
		api.GET("/health", healthController.Status)

		api.GET("/authors", authorsController.ListAuthors)
		api.POST("/authors", authorsController.CreateAuthor)
		api.GET("/authors/:id", authorsController.GetAuthor)

		api.GET("/genres", genresController.ListGenres)
		api.POST("/genres", genresController.CreateGenre)

		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
	}

	return router
}
