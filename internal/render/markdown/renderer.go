// Package markdown renders book highlights as a Markdown document.
//
// A document starts with the book title and authors and then lists every
// highlight in book order, each followed by a link to its location:
//
//	# Title
//
//	*by Author*
//
//	---
//
//	> Quote
//
//	[Location 1](kindle://book?action=open&asin=B0049U443Q&location=1)
//
// Styles and separators are chosen through Settings.
package markdown

import (
	"fmt"
	"io"

	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/render"
)

// Renderer renders books to markdown with fixed settings. It writes
// straight into the output in a single pass.
type Renderer struct {
	settings Settings
}

// NewRenderer creates a renderer using the given settings.
func NewRenderer(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// NewDefaultRenderer creates a renderer using DefaultSettings.
func NewDefaultRenderer() *Renderer {
	return NewRenderer(DefaultSettings())
}

// Settings returns the settings the renderer was created with.
func (r *Renderer) Settings() Settings {
	return r.settings
}

// RenderBook renders the book with default settings.
func RenderBook(book *highlights.Book, out io.Writer) error {
	return NewDefaultRenderer().Render(book, out)
}

// Render writes the markdown document for book into out. Rendering stops
// at the first failed write; the partial output should be discarded.
func (r *Renderer) Render(book *highlights.Book, out io.Writer) error {
	md := NewWriter(out)

	md.Heading(book.Title())
	md.EndBlock()
	md.Italic("by " + book.Authors())
	md.EndBlock()

	for _, highlight := range book.Highlights() {
		if md.Err() != nil {
			break
		}
		r.renderSeparator(md)
		r.renderHighlight(md, highlight)
		md.EndBlock()
		r.renderLocation(md, highlight.Location())
		md.EndBlock()
	}

	if err := md.Err(); err != nil {
		return highlights.IOError("cannot write markdown notes", err)
	}
	return nil
}

func (r *Renderer) renderSeparator(md *Writer) {
	if r.settings.SplitLinesEnabled() {
		md.Line()
		md.EndBlock()
		return
	}
	md.LF()
}

func (r *Renderer) renderHighlight(md *Writer, highlight highlights.Highlight) {
	switch h := highlight.(type) {
	case highlights.Quote:
		r.renderQuote(md, h.Text)
	case highlights.Note:
		r.renderNote(md, h.Text)
	case highlights.Comment:
		r.renderComment(md, h)
	}
}

func (r *Renderer) renderComment(md *Writer, comment highlights.Comment) {
	r.renderQuote(md, comment.Quote)

	if r.settings.NoteStyle() != NoteStyleNestedQuote {
		md.EndBlock()
		r.renderNote(md, comment.Note)
		return
	}

	if r.settings.QuoteStyle() == QuoteStyleBlockQuote {
		md.LF()
		md.BlockquoteBreak()
		md.LF()
		md.NestedBlockquote(comment.Note)
		return
	}

	// Nothing to nest into.
	md.EndBlock()
	md.Text(comment.Note)
}

func (r *Renderer) renderQuote(md *Writer, text string) {
	switch r.settings.QuoteStyle() {
	case QuoteStyleItalic:
		md.Italic(text)
	case QuoteStyleBold:
		md.Bold(text)
	case QuoteStylePlain:
		md.Text(text)
	default:
		md.Blockquote(text)
	}
}

func (r *Renderer) renderNote(md *Writer, text string) {
	switch r.settings.NoteStyle() {
	case NoteStyleBold:
		md.Bold(text)
	case NoteStyleItalic:
		md.Italic(text)
	case NoteStyleBlockQuote, NoteStyleNestedQuote:
		md.Blockquote(text)
	default:
		md.Text(text)
	}
}

func (r *Renderer) renderLocation(md *Writer, location highlights.Location) {
	md.Link(fmt.Sprintf("Location %d", location.Value()), location.Link())
}

// Compile-time interface implementation check
var _ render.Renderer = (*Renderer)(nil)
