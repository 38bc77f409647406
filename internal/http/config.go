package http

import (
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Database backs the health check. May be nil.
	Database Pinger
	// Books backs the /api/books endpoints. Book routes are skipped when nil.
	Books BookStore
	// Export backs the /api/export endpoints. May be nil.
	Export ExportRunner

	// Defaults for rendering; query parameters override them per request.
	Settings markdown.Settings

	// Application info
	Version string
}
