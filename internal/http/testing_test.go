package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

const meditationsJSON = `{
  "asin": "B000FC1PJI",
  "title": "Meditations",
  "authors": "Marcus Aurelius",
  "highlights": [
    {
      "text": "You have power over your mind",
      "isNoteOnly": false,
      "location": {"url": "kindle://12", "value": 12},
      "note": null
    },
    {
      "text": "Waste no more time",
      "isNoteOnly": false,
      "location": {"url": "kindle://40", "value": 40},
      "note": "Daily reminder"
    }
  ]
}`

const meditationsMarkdown = "# Meditations\n\n*by Marcus Aurelius*\n\n" +
	"---\n\n> You have power over your mind\n\n[Location 12](kindle://12)\n\n" +
	"---\n\n> Waste no more time\n\nDaily reminder\n\n[Location 40](kindle://40)\n\n"

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRouter(db *database.Database, export ExportRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := RouterConfig{
		Settings: markdown.DefaultSettings(),
		Version:  "test",
		Export:   export,
	}
	if db != nil {
		cfg.Database = db
		cfg.Books = db
	}
	return NewRouter(cfg)
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	router.ServeHTTP(w, req)
	return w
}

// withBodyLimit lowers the request body cap for one test.
func withBodyLimit(t *testing.T, limit int64) {
	t.Helper()
	previous := maxBodyBytes
	maxBodyBytes = limit
	t.Cleanup(func() { maxBodyBytes = previous })
}
