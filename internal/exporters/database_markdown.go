package exporters

import (
	"fmt"
	"log"

	"github.com/mrlokans/highlights/internal/highlights"
)

// BookLoader loads every stored book.
type BookLoader interface {
	LoadBooks() ([]*highlights.Book, error)
}

// DatabaseMarkdownExporter exports all stored books to markdown files.
type DatabaseMarkdownExporter struct {
	db               BookLoader
	markdownExporter BookExporter
}

func NewDatabaseMarkdownExporter(db BookLoader, markdownExporter BookExporter) *DatabaseMarkdownExporter {
	return &DatabaseMarkdownExporter{
		db:               db,
		markdownExporter: markdownExporter,
	}
}

func (exporter *DatabaseMarkdownExporter) ExportAll() (ExportResult, error) {
	books, err := exporter.db.LoadBooks()
	if err != nil {
		return ExportResult{}, err
	}

	result, err := exporter.markdownExporter.Export(books)
	if err != nil {
		return result, fmt.Errorf("failed to export to markdown: %w", err)
	}

	log.Printf("Export completed: %d books processed, %d highlights processed, %d books failed",
		result.BooksProcessed, result.HighlightsProcessed, result.BooksFailed)

	return result, nil
}
