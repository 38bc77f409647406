package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/exporters"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// ExportCommand writes every stored book to a markdown file.
type ExportCommand struct {
	DatabasePath string
	OutputDir    string

	styles   styleFlags
	settings markdown.Settings
	cfg      *config.Config
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{cfg: cfg}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the local database file")
	fs.StringVar(&cmd.OutputDir, "output", cmd.cfg.Export.Dir, "Output directory for markdown files (created if missing)")
	cmd.styles.register(fs, cmd.cfg)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all stored books as markdown files, one file per book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return highlights.GeneralError(fmt.Sprintf("unexpected arguments: %v", fs.Args()))
	}

	settings, err := cmd.styles.settings()
	if err != nil {
		return err
	}
	cmd.settings = settings
	return nil
}

func (cmd *ExportCommand) Run() error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	if err := os.MkdirAll(absOutputDir, 0o755); err != nil {
		return highlights.IOError("cannot create output directory "+absOutputDir, err)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return highlights.IOError("failed to initialize database", err)
	}
	defer db.Close()

	fmt.Printf("Exporting to markdown: %s\n", absOutputDir)

	markdownExporter := exporters.NewMarkdownExporter(absOutputDir, markdown.NewRenderer(cmd.settings))
	result, err := exporters.NewDatabaseMarkdownExporter(db, markdownExporter).ExportAll()
	if err != nil {
		return err
	}

	fmt.Println("\n=== Markdown Export Summary ===")
	fmt.Printf("Books exported: %d\n", result.BooksProcessed)
	fmt.Printf("Highlights exported: %d\n", result.HighlightsProcessed)
	if result.BooksFailed > 0 {
		fmt.Printf("Books failed: %d\n", result.BooksFailed)
		return highlights.IOError(fmt.Sprintf("%d books could not be exported", result.BooksFailed), nil)
	}
	return nil
}
