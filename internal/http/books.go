package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/entities"
	"github.com/mrlokans/highlights/internal/input/bookcision"
	"github.com/mrlokans/highlights/internal/render"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// BookSummary is the list representation of a stored book.
type BookSummary struct {
	ID         uint   `json:"id"`
	ASIN       string `json:"asin,omitempty"`
	Title      string `json:"title"`
	Authors    string `json:"authors"`
	Highlights int    `json:"highlights"`
}

func summarize(book entities.Book) BookSummary {
	return BookSummary{
		ID:         book.ID,
		ASIN:       book.ASIN,
		Title:      book.Title,
		Authors:    book.Authors,
		Highlights: len(book.Highlights),
	}
}

type BooksController struct {
	store    BookStore
	defaults markdown.Settings
}

func NewBooksController(store BookStore, defaults markdown.Settings) *BooksController {
	return &BooksController{
		store:    store,
		defaults: defaults,
	}
}

// Import stores a posted bookcision export. Importing the same title and
// authors again replaces the stored highlights.
func (controller *BooksController) Import(c *gin.Context) {
	limitBody(c)
	doc, err := bookcision.Decode(c.Request.Body)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	stored, err := controller.store.SaveBook(doc.Book(), doc.ASIN)
	if err != nil {
		respondInternalError(c, err, "import book")
		return
	}

	log.Printf("Imported '%s' with %d highlights", stored.Title, len(stored.Highlights))
	c.IndentedJSON(http.StatusCreated, summarize(*stored))
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if query := c.Query("q"); query != "" {
		books, err = controller.store.SearchBooks(query)
	} else {
		books, err = controller.store.GetAllBooks()
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	summaries := make([]BookSummary, 0, len(books))
	for _, book := range books {
		summaries = append(summaries, summarize(book))
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": summaries, "count": len(summaries)})
}

func (controller *BooksController) GetBookStats(c *gin.Context) {
	totalBooks, totalHighlights, err := controller.store.GetStats()
	if err != nil {
		respondInternalError(c, err, "book stats")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"total_books":      totalBooks,
		"total_highlights": totalHighlights,
	})
}

// GetMarkdown renders a stored book with the configured settings, overridable
// through query parameters.
func (controller *BooksController) GetMarkdown(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	settings, err := settingsFromQuery(c, controller.defaults)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	stored, err := controller.store.GetBookByID(id)
	if errors.Is(err, database.ErrBookNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}

	book, err := stored.ToBook()
	if err != nil {
		respondInternalError(c, err, "convert book")
		return
	}
	body, err := render.RenderString(markdown.NewRenderer(settings), book)
	if err != nil {
		respondInternalError(c, err, "render book")
		return
	}
	respondMarkdown(c, body)
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := controller.store.DeleteBook(id)
	if errors.Is(err, database.ErrBookNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
