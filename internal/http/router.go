package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Export, cfg.Version)
	renderer := NewRenderController(cfg.Settings)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	// Stateless rendering
	router.POST("/api/render", renderer.Render)

	// Books API endpoints
	if cfg.Books != nil {
		books := NewBooksController(cfg.Books, cfg.Settings)
		router.POST("/api/books", books.Import)
		router.GET("/api/books", books.GetAllBooks)
		router.GET("/api/books/stats", books.GetBookStats)
		router.GET("/api/books/:id/markdown", books.GetMarkdown)
		router.DELETE("/api/books/:id", books.DeleteBook)
	}

	// Markdown export endpoints
	if cfg.Export != nil {
		export := NewExportController(cfg.Export)
		router.POST("/api/export/sync", export.Sync)
		router.GET("/api/export/status", export.Status)
	}

	return router
}
