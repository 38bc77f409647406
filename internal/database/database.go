package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/highlights/internal/entities"
	"github.com/mrlokans/highlights/internal/highlights"
)

// ErrBookNotFound is returned when no stored book matches a lookup.
var ErrBookNotFound = errors.New("book not found")

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Highlight{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// SaveBook stores a book, replacing the highlights of an existing book with
// the same title and authors. Returns the stored entity.
func (d *Database) SaveBook(book *highlights.Book, asin string) (*entities.Book, error) {
	entity := entities.NewBook(book, asin)

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		var existing entities.Book
		result := tx.Where("title = ? AND authors = ?", entity.Title, entity.Authors).First(&existing)

		switch {
		case result.Error == nil:
			entity.ID = existing.ID
			entity.CreatedAt = existing.CreatedAt
			if err := tx.Where("book_id = ?", existing.ID).Delete(&entities.Highlight{}).Error; err != nil {
				return fmt.Errorf("failed to replace highlights: %w", err)
			}
			return tx.Save(&entity).Error
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			return tx.Create(&entity).Error
		default:
			return result.Error
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save book '%s': %w", entity.Title, err)
	}
	return &entity, nil
}

func orderedHighlights(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// GetBookByID retrieves a book with its highlights in book order.
func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Preload("Highlights", orderedHighlights).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookByTitleAndAuthors retrieves a book by its exact title and authors.
func (d *Database) GetBookByTitleAndAuthors(title, authors string) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Preload("Highlights", orderedHighlights).
		Where("title = ? AND authors = ?", title, authors).
		First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves all books ordered by title.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.Preload("Highlights", orderedHighlights).Order("title ASC").Find(&books).Error
	return books, err
}

// SearchBooks searches books by title or authors (case-insensitive partial match).
func (d *Database) SearchBooks(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := d.DB.Preload("Highlights", orderedHighlights).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(authors) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("title ASC").
		Find(&books).Error
	return books, err
}

// GetStats counts stored books and highlights.
func (d *Database) GetStats() (totalBooks int64, totalHighlights int64, err error) {
	err = d.DB.Model(&entities.Book{}).Count(&totalBooks).Error
	if err != nil {
		return 0, 0, err
	}
	err = d.DB.Model(&entities.Highlight{}).Count(&totalHighlights).Error
	return totalBooks, totalHighlights, err
}

// DeleteBook removes a book and its highlights.
func (d *Database) DeleteBook(id uint) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Highlight{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookNotFound
		}
		return nil
	})
}

// LoadBooks returns every stored book as a domain book.
func (d *Database) LoadBooks() ([]*highlights.Book, error) {
	stored, err := d.GetAllBooks()
	if err != nil {
		return nil, fmt.Errorf("failed to get books from database: %w", err)
	}
	books := make([]*highlights.Book, 0, len(stored))
	for _, entity := range stored {
		book, err := entity.ToBook()
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}
