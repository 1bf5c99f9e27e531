package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhorky/librarium/internal/config"
	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/database/authors"
	"github.com/mhorky/librarium/internal/database/books"
	"github.com/mhorky/librarium/internal/database/genres"
	"github.com/mhorky/librarium/internal/demo"
	http_controllers "github.com/mhorky/librarium/internal/http"
	"github.com/mhorky/librarium/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then give in-flight
	// requests the configured timeout to complete.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Librarium v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	authorRepo := authors.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	var demoMiddleware *demo.Middleware
	var resetScheduler *scheduler.DemoResetScheduler
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)

		if err := demo.Seed(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}

		resetScheduler = scheduler.NewDemoResetScheduler(db, cfg.Demo.ResetSchedule)
		if err := resetScheduler.Start(); err != nil {
			log.Fatalf("Failed to start demo reset scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		AuthorStore:    authorRepo,
		GenreStore:     genreRepo,
		BookStore:      bookRepo,
		Database:       db,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		Version:        version,
		DemoMiddleware: demoMiddleware,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if resetScheduler != nil {
			resetScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
