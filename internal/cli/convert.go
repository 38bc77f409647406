package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/input/bookcision"
	"github.com/mrlokans/highlights/internal/render"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// ConvertCommand renders a bookcision export as a markdown document.
type ConvertCommand struct {
	InputPath  string // empty reads stdin
	OutputPath string // empty writes stdout
	Sample     bool

	Stdin  io.Reader
	Stdout io.Writer

	styles   styleFlags
	settings markdown.Settings
	cfg      *config.Config
}

func NewConvertCommand(cfg *config.Config) *ConvertCommand {
	return &ConvertCommand{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		cfg:    cfg,
	}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	cmd.styles.register(fs, cmd.cfg)
	fs.BoolVar(&cmd.Sample, "sample", false, "Render a built-in sample book and ignore the input")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [convert] [options] [input.json] [output.md]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render a Bookcision highlights export as markdown.\n")
		fmt.Fprintf(os.Stderr, "Reads stdin when no input is given and writes stdout when no output is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s book.json book.md\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat book.json | %s -quote-style italic -note-style nested_quote\n", os.Args[0])
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cmd.InputPath = rest[0]
	case 2:
		cmd.InputPath, cmd.OutputPath = rest[0], rest[1]
	default:
		return highlights.GeneralError(fmt.Sprintf("too many arguments: %v", rest[2:]))
	}

	settings, err := cmd.styles.settings()
	if err != nil {
		return err
	}
	cmd.settings = settings
	return nil
}

func (cmd *ConvertCommand) readBook() (*highlights.Book, error) {
	if cmd.Sample {
		return highlights.ChessBook(), nil
	}
	if cmd.InputPath == "" {
		return bookcision.Parse(cmd.Stdin)
	}

	file, err := os.Open(cmd.InputPath)
	if err != nil {
		return nil, highlights.IOError("cannot read input file "+cmd.InputPath, err)
	}
	defer file.Close()
	return bookcision.Parse(file)
}

// Run reads the whole book before opening the output so a bad input never
// truncates an existing file.
func (cmd *ConvertCommand) Run() error {
	book, err := cmd.readBook()
	if err != nil {
		return err
	}

	renderer := markdown.NewRenderer(cmd.settings)

	if cmd.OutputPath == "" {
		out := bufio.NewWriter(cmd.Stdout)
		if err := renderer.Render(book, out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return highlights.IOError("cannot write markdown notes", err)
		}
		return nil
	}

	return writeOutput(cmd.OutputPath, book, renderer)
}

// writeOutput renders book into path. When rendering fails a regular file
// is removed so no truncated document is left behind.
func writeOutput(path string, book *highlights.Book, renderer render.Renderer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return highlights.IOError("cannot write to file "+path, err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = highlights.IOError("cannot write to file "+path, closeErr)
		}
		if err != nil {
			if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
				os.Remove(path)
			}
		}
	}()

	out := bufio.NewWriter(file)
	if err := renderer.Render(book, out); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return highlights.IOError("cannot write to file "+path, err)
	}
	return nil
}
