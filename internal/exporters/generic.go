package exporters

import "github.com/mrlokans/highlights/internal/highlights"

type BookExporter interface {
	Export(books []*highlights.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed      int      `json:"books_processed"`
	HighlightsProcessed int      `json:"highlights_processed"`
	BooksFailed         int      `json:"books_failed"`
	Files               []string `json:"files,omitempty"`
}
