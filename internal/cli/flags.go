package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// styleFlags registers the rendering flags shared by convert and export.
// Configured values are the flag defaults.
type styleFlags struct {
	SplitLines bool
	QuoteStyle string
	NoteStyle  string
}

func (f *styleFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&f.SplitLines, "split-lines", cfg.Render.SplitLines, "Separate highlights with horizontal rules")
	fs.StringVar(&f.QuoteStyle, "quote-style", cfg.Render.QuoteStyle,
		"Quote style: "+joinStyles(markdown.QuoteStyles()))
	fs.StringVar(&f.NoteStyle, "note-style", cfg.Render.NoteStyle,
		"Note style: "+joinStyles(markdown.NoteStyles()))
}

// settings validates the style names. Unknown names are general errors.
func (f *styleFlags) settings() (markdown.Settings, error) {
	quoteStyle, err := markdown.ParseQuoteStyle(f.QuoteStyle)
	if err != nil {
		return markdown.Settings{}, highlights.GeneralError(fmt.Sprintf("invalid -quote-style: %v", err))
	}
	noteStyle, err := markdown.ParseNoteStyle(f.NoteStyle)
	if err != nil {
		return markdown.Settings{}, highlights.GeneralError(fmt.Sprintf("invalid -note-style: %v", err))
	}
	return markdown.NewSettings().
		SplitLines(f.SplitLines).
		QuoteStyle(quoteStyle).
		NoteStyle(noteStyle).
		Build(), nil
}

func joinStyles[S ~string](styles []S) string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// parseFlags parses args and turns flag errors other than -help into
// general errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return highlights.GeneralError(err.Error())
}
