package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/input/bookcision"
)

// ImportCommand stores bookcision exports in the local database.
type ImportCommand struct {
	Files        []string
	DatabasePath string
	Verbose      bool

	cfg *config.Config
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{cfg: cfg}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the local database file for storing imported highlights")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options] <book.json>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import Bookcision highlights exports into the local database.\n")
		fmt.Fprintf(os.Stderr, "Importing a book again replaces its stored highlights.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cmd.Files = fs.Args()
	if len(cmd.Files) == 0 {
		return highlights.GeneralError("no input files provided")
	}
	return nil
}

func parseFile(path string) (*bookcision.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, highlights.IOError("cannot read input file "+path, err)
	}
	defer file.Close()
	return bookcision.Decode(file)
}

// Run imports every file. A file that fails is reported and skipped; the
// first failure is returned once all files were tried.
func (cmd *ImportCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	fmt.Printf("Saving to database: %s\n", absDBPath)

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return highlights.IOError("failed to initialize database", err)
	}
	defer db.Close()

	var (
		importedBooks, importedHighlights int
		firstErr                          error
	)
	for _, path := range cmd.Files {
		doc, err := parseFile(path)
		if err != nil {
			fmt.Printf("  [ERROR] %s: %v\n", path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		book := doc.Book()
		if _, err := db.SaveBook(book, doc.ASIN); err != nil {
			fmt.Printf("  [ERROR] %s: %v\n", path, err)
			if firstErr == nil {
				firstErr = highlights.IOError("cannot save "+book.Title(), err)
			}
			continue
		}

		importedBooks++
		importedHighlights += book.Len()
		if cmd.Verbose {
			fmt.Printf("  [OK] \"%s\" by %s (%d highlights)\n", book.Title(), book.Authors(), book.Len())
		}
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Books saved: %d/%d\n", importedBooks, len(cmd.Files))
	fmt.Printf("Highlights saved: %d\n", importedHighlights)

	return firstErr
}
