package entities

import (
	"fmt"
	"time"

	"github.com/mrlokans/highlights/internal/highlights"
)

type HighlightKind string

const (
	HighlightKindQuote   HighlightKind = "quote"
	HighlightKindNote    HighlightKind = "note"
	HighlightKindComment HighlightKind = "comment"
)

type Book struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	ASIN       string      `gorm:"size:20" json:"asin,omitempty"`
	Title      string      `gorm:"index;size:512" json:"title"`
	Authors    string      `gorm:"index;size:256" json:"authors"`
	Highlights []Highlight `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Highlight struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	BookID   uint          `gorm:"index" json:"book_id"`
	Position int           `gorm:"index" json:"position"` // Order within the book
	Kind     HighlightKind `gorm:"size:20;default:'quote'" json:"kind"`
	Quote    string        `gorm:"type:text" json:"quote,omitempty"`
	Note     string        `gorm:"type:text" json:"note,omitempty"`

	LocationValue uint   `json:"location_value"`
	LocationLink  string `gorm:"size:2048" json:"location_link"`

	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Highlight) TableName() string {
	return "highlights"
}

// NewBook converts a domain book into a storable entity. Positions follow
// the book order.
func NewBook(book *highlights.Book, asin string) Book {
	entity := Book{
		ASIN:    asin,
		Title:   book.Title(),
		Authors: book.Authors(),
	}
	for i, h := range book.Highlights() {
		stored := Highlight{
			Position:      i,
			LocationValue: h.Location().Value(),
			LocationLink:  h.Location().Link(),
		}
		switch v := h.(type) {
		case highlights.Quote:
			stored.Kind = HighlightKindQuote
			stored.Quote = v.Text
		case highlights.Note:
			stored.Kind = HighlightKindNote
			stored.Note = v.Text
		case highlights.Comment:
			stored.Kind = HighlightKindComment
			stored.Quote = v.Quote
			stored.Note = v.Note
		}
		entity.Highlights = append(entity.Highlights, stored)
	}
	return entity
}

// ToBook converts the entity back into the domain model. Highlights are
// expected to be sorted by Position already.
func (b Book) ToBook() (*highlights.Book, error) {
	hs := make([]highlights.Highlight, 0, len(b.Highlights))
	for _, h := range b.Highlights {
		converted, err := h.ToHighlight()
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", b.ID, err)
		}
		hs = append(hs, converted)
	}
	return highlights.NewBook(b.Title, b.Authors, hs...), nil
}

func (h Highlight) ToHighlight() (highlights.Highlight, error) {
	location := highlights.NewLocation(h.LocationValue, h.LocationLink)
	switch h.Kind {
	case HighlightKindQuote:
		return highlights.NewQuote(h.Quote, location), nil
	case HighlightKindNote:
		return highlights.NewNote(h.Note, location), nil
	case HighlightKindComment:
		return highlights.NewComment(h.Quote, h.Note, location), nil
	default:
		return nil, fmt.Errorf("highlight %d has unknown kind %q", h.ID, h.Kind)
	}
}
