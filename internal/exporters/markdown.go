package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/render"
	"github.com/mrlokans/highlights/internal/utils"
)

// MarkdownExporter writes one markdown file per book into ExportDir.
type MarkdownExporter struct {
	ExportDir string
	Renderer  render.Renderer
}

func NewMarkdownExporter(exportDir string, renderer render.Renderer) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir: exportDir,
		Renderer:  renderer,
	}
}

func (exporter *MarkdownExporter) ensureDir() error {
	info, err := os.Stat(exporter.ExportDir)
	if err != nil {
		return highlights.IOError(fmt.Sprintf("cannot access export directory %s", exporter.ExportDir), err)
	}
	if !info.IsDir() {
		return highlights.GeneralError(fmt.Sprintf("export path %s is not a directory", exporter.ExportDir))
	}
	return nil
}

// exportBook renders the book into path. A partially written file is
// removed so no truncated document is left behind.
func (exporter *MarkdownExporter) exportBook(book *highlights.Book, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return highlights.IOError(fmt.Sprintf("cannot write to file %s", path), err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = highlights.IOError(fmt.Sprintf("cannot write to file %s", path), closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return exporter.Renderer.Render(book, file)
}

// Export writes every book. Books that fail are logged and counted; only a
// missing export directory fails the whole export.
func (exporter *MarkdownExporter) Export(books []*highlights.Book) (ExportResult, error) {
	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{}
	taken := make(map[string]bool)

	for _, book := range books {
		path := filepath.Join(exporter.ExportDir, utils.MarkdownFilename(book.Title(), taken))
		if err := exporter.exportBook(book, path); err != nil {
			log.Printf("Failed to export book '%s' by %s: %v", book.Title(), book.Authors(), err)
			result.BooksFailed++
			continue
		}
		result.BooksProcessed++
		result.HighlightsProcessed += book.Len()
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// Compile-time interface implementation check
var _ BookExporter = (*MarkdownExporter)(nil)
