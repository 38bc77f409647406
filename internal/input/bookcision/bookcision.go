// Package bookcision reads Kindle highlights exported with bookcision
// (https://readwise.io/bookcision) as JSON.
//
//	{
//	  "asin": "B0049U443Q",
//	  "title": "How Life Imitates Chess",
//	  "authors": "Garry Kasparov",
//	  "highlights": [
//	    {
//	      "text": "the reality is that we discard our decisions",
//	      "isNoteOnly": false,
//	      "location": {"url": "kindle://book?action=open&asin=B0049U443Q&location=157", "value": 157},
//	      "note": null
//	    }
//	  ]
//	}
package bookcision

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mrlokans/highlights/internal/highlights"
)

// ErrorMessage is the message of every format error returned by this package.
const ErrorMessage = "invalid bookcision json file"

// Document is the bookcision export of a single book.
type Document struct {
	ASIN       string      `json:"asin"`
	Title      *string     `json:"title"`
	Authors    *string     `json:"authors"`
	Highlights []Highlight `json:"highlights"`
}

type Highlight struct {
	Text       string   `json:"text"`
	IsNoteOnly bool     `json:"isNoteOnly"`
	Location   Location `json:"location"`
	Note       *string  `json:"note"`
}

type Location struct {
	Value uint32 `json:"value"`
	URL   string `json:"url"`
}

// Decode reads a document and checks that the required fields are present.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, highlights.FormatError(ErrorMessage, err)
	}
	// The document must be the whole input.
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after the document")
		}
		return nil, highlights.FormatError(ErrorMessage, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Parse decodes a document and converts it into a book.
func Parse(r io.Reader) (*highlights.Book, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return doc.Book(), nil
}

// Validate reports missing required fields as a format error.
func (d *Document) Validate() error {
	var missing []string
	if d.Title == nil {
		missing = append(missing, "title")
	}
	if d.Authors == nil {
		missing = append(missing, "authors")
	}
	if d.Highlights == nil {
		missing = append(missing, "highlights")
	}
	if len(missing) > 0 {
		return highlights.FormatError(ErrorMessage, fmt.Errorf("missing fields: %v", missing))
	}
	return nil
}

// Book converts the document into the domain model, keeping highlight order.
//
// A note-only entry becomes a Note, an entry with a non-empty note becomes a
// Comment and everything else is a Quote.
func (d *Document) Book() *highlights.Book {
	hs := make([]highlights.Highlight, 0, len(d.Highlights))
	for _, h := range d.Highlights {
		hs = append(hs, h.highlight())
	}
	return highlights.NewBook(deref(d.Title), deref(d.Authors), hs...)
}

func (h Highlight) highlight() highlights.Highlight {
	location := highlights.NewLocation(uint(h.Location.Value), h.Location.URL)
	note := deref(h.Note)

	switch {
	case h.IsNoteOnly:
		if h.Note == nil {
			// Older exports keep the note-only text in "text".
			return highlights.NewNote(h.Text, location)
		}
		return highlights.NewNote(note, location)
	case note != "":
		return highlights.NewComment(h.Text, note, location)
	default:
		return highlights.NewQuote(h.Text, location)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
