// Package highlights holds the domain model for book highlights.
//
// A Book is built once by an input source and then only read. Renderers
// walk Book.Highlights() in order; Location values do not affect ordering.
package highlights

// Location points to a highlighted passage inside the source book.
type Location struct {
	value uint
	link  string
}

// NewLocation creates a location with the numeric position and a link back
// to the passage in its original viewer.
func NewLocation(value uint, link string) Location {
	return Location{value: value, link: link}
}

func (l Location) Value() uint {
	return l.value
}

func (l Location) Link() string {
	return l.link
}

// Highlight is one of Quote, Note or Comment.
type Highlight interface {
	Location() Location
	highlight()
}

// Quote is a word-by-word passage from the book.
type Quote struct {
	Text string
	Loc  Location
}

// Note is a margin note attached to a book location.
type Note struct {
	Text string
	Loc  Location
}

// Comment is a quoted passage together with the reader's note on it.
type Comment struct {
	Quote string
	Note  string
	Loc   Location
}

func NewQuote(text string, location Location) Quote {
	return Quote{Text: text, Loc: location}
}

func NewNote(text string, location Location) Note {
	return Note{Text: text, Loc: location}
}

func NewComment(quote, note string, location Location) Comment {
	return Comment{Quote: quote, Note: note, Loc: location}
}

func (q Quote) Location() Location   { return q.Loc }
func (n Note) Location() Location    { return n.Loc }
func (c Comment) Location() Location { return c.Loc }

func (Quote) highlight()   {}
func (Note) highlight()    {}
func (Comment) highlight() {}

// Book is a book with its highlighted passages in reading order.
type Book struct {
	title      string
	authors    string
	highlights []Highlight
}

// NewBook creates a book. The highlights slice is copied so later changes
// by the caller do not leak into the book.
func NewBook(title, authors string, highlights ...Highlight) *Book {
	hs := make([]Highlight, len(highlights))
	copy(hs, highlights)
	return &Book{
		title:      title,
		authors:    authors,
		highlights: hs,
	}
}

func (b *Book) Title() string {
	return b.title
}

func (b *Book) Authors() string {
	return b.authors
}

// Highlights returns a copy of the book highlights in source order.
func (b *Book) Highlights() []Highlight {
	hs := make([]Highlight, len(b.highlights))
	copy(hs, b.highlights)
	return hs
}

// Len returns the number of highlights.
func (b *Book) Len() int {
	return len(b.highlights)
}

// Compile-time interface implementation checks
var _ Highlight = Quote{}
var _ Highlight = Note{}
var _ Highlight = Comment{}
