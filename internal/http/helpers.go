package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/highlights/internal/render/markdown"
)

const markdownContentType = "text/markdown; charset=utf-8"

// maxBodyBytes caps uploaded bookcision documents.
var maxBodyBytes int64 = 10 << 20

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// limitBody makes reads past maxBodyBytes fail.
func limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
}

// respondDecodeError sends 413 for oversized bodies and 400 otherwise.
func respondDecodeError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return
	}
	respondBadRequest(c, err.Error())
}

// respondMarkdown sends rendered markdown.
func respondMarkdown(c *gin.Context, body string) {
	c.Data(http.StatusOK, markdownContentType, []byte(body))
}

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// settingsFromQuery applies split_lines, quote_style and note_style query
// parameters on top of the defaults.
func settingsFromQuery(c *gin.Context, defaults markdown.Settings) (markdown.Settings, error) {
	builder := markdown.NewSettings().
		SplitLines(defaults.SplitLinesEnabled()).
		QuoteStyle(defaults.QuoteStyle()).
		NoteStyle(defaults.NoteStyle())

	if value, ok := c.GetQuery("split_lines"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return markdown.Settings{}, fmt.Errorf("invalid split_lines %q", value)
		}
		builder = builder.SplitLines(enabled)
	}
	if value, ok := c.GetQuery("quote_style"); ok {
		style, err := markdown.ParseQuoteStyle(value)
		if err != nil {
			return markdown.Settings{}, err
		}
		builder = builder.QuoteStyle(style)
	}
	if value, ok := c.GetQuery("note_style"); ok {
		style, err := markdown.ParseNoteStyle(value)
		if err != nil {
			return markdown.Settings{}, err
		}
		builder = builder.NoteStyle(style)
	}
	return builder.Build(), nil
}
