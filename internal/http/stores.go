package http

import (
	"time"

	"github.com/mrlokans/highlights/internal/entities"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/scheduler"
)

// BookGetter provides read access to stored books.
type BookGetter interface {
	GetBookByID(id uint) (*entities.Book, error)
}

// BookStore is everything the books controller needs from the database.
type BookStore interface {
	BookGetter
	SaveBook(book *highlights.Book, asin string) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	GetStats() (totalBooks int64, totalHighlights int64, err error)
	DeleteBook(id uint) error
}

// ExportRunner triggers the markdown export on demand.
type ExportRunner interface {
	RunNow() scheduler.SyncStatus
	Status() scheduler.SyncStatus
	GetNextRunTime() *time.Time
}
