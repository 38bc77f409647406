// Package render defines the contract for exporting books into text formats.
package render

import (
	"bytes"
	"io"

	"github.com/mrlokans/highlights/internal/highlights"
)

// Renderer writes a book into an output format.
//
// Implementations:
//   - markdown.Renderer (internal/render/markdown) - Markdown document
type Renderer interface {
	Render(book *highlights.Book, out io.Writer) error
}

// RenderString renders the book into memory. Meant for tests and small
// responses; commands should render straight into their output.
func RenderString(r Renderer, book *highlights.Book) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(book, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
