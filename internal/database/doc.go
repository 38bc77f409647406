// Package database stores imported books in sqlite through gorm.
//
// Highlights keep a position column so that a book read back from storage
// renders in the same order it was imported in.
//
//	db, err := database.NewDatabase("./highlights.db")
//	stored, err := db.SaveBook(book, "B0049U443Q")
//	books, err := db.LoadBooks()
package database
