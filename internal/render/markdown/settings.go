package markdown

import (
	"fmt"
	"strings"
)

// QuoteStyle is the emphasis applied to quoted passages.
type QuoteStyle string

const (
	QuoteStyleBlockQuote QuoteStyle = "blockquote"
	QuoteStyleItalic     QuoteStyle = "italic"
	QuoteStylePlain      QuoteStyle = "plain"
	QuoteStyleBold       QuoteStyle = "bold"
)

// NoteStyle is the emphasis applied to reader notes.
type NoteStyle string

const (
	NoteStylePlain       NoteStyle = "plain"
	NoteStyleBold        NoteStyle = "bold"
	NoteStyleItalic      NoteStyle = "italic"
	NoteStyleBlockQuote  NoteStyle = "blockquote"
	NoteStyleNestedQuote NoteStyle = "nested_quote" // Nests into the quote when it is a blockquote
)

var quoteStyles = []QuoteStyle{QuoteStyleBlockQuote, QuoteStyleItalic, QuoteStylePlain, QuoteStyleBold}

var noteStyles = []NoteStyle{NoteStylePlain, NoteStyleBold, NoteStyleItalic, NoteStyleBlockQuote, NoteStyleNestedQuote}

// QuoteStyles lists every supported quote style.
func QuoteStyles() []QuoteStyle {
	return append([]QuoteStyle(nil), quoteStyles...)
}

// NoteStyles lists every supported note style.
func NoteStyles() []NoteStyle {
	return append([]NoteStyle(nil), noteStyles...)
}

func (s QuoteStyle) valid() bool {
	for _, known := range quoteStyles {
		if s == known {
			return true
		}
	}
	return false
}

func (s NoteStyle) valid() bool {
	for _, known := range noteStyles {
		if s == known {
			return true
		}
	}
	return false
}

func normalizeStyleName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// ParseQuoteStyle reads a quote style name such as "blockquote" or "Bold".
func ParseQuoteStyle(name string) (QuoteStyle, error) {
	style := QuoteStyle(normalizeStyleName(name))
	if style == "block_quote" {
		style = QuoteStyleBlockQuote
	}
	if !style.valid() {
		return "", fmt.Errorf("unknown quote style %q (expected one of %v)", name, quoteStyles)
	}
	return style, nil
}

// ParseNoteStyle reads a note style name such as "plain" or "nested-quote".
func ParseNoteStyle(name string) (NoteStyle, error) {
	style := NoteStyle(normalizeStyleName(name))
	switch style {
	case "block_quote":
		style = NoteStyleBlockQuote
	case "nestedquote":
		style = NoteStyleNestedQuote
	}
	if !style.valid() {
		return "", fmt.Errorf("unknown note style %q (expected one of %v)", name, noteStyles)
	}
	return style, nil
}

// Settings controls how the markdown renderer styles a book.
// The zero value is not meaningful; use DefaultSettings or NewSettings.
type Settings struct {
	splitLines bool
	quoteStyle QuoteStyle
	noteStyle  NoteStyle
}

// DefaultSettings splits highlights with rules, quotes as blockquotes and
// leaves notes plain.
func DefaultSettings() Settings {
	return Settings{
		splitLines: true,
		quoteStyle: QuoteStyleBlockQuote,
		noteStyle:  NoteStylePlain,
	}
}

func (s Settings) SplitLinesEnabled() bool {
	return s.splitLines
}

func (s Settings) QuoteStyle() QuoteStyle {
	return s.quoteStyle
}

func (s Settings) NoteStyle() NoteStyle {
	return s.noteStyle
}

// SettingsBuilder collects settings changes. Every method returns a new
// builder, so a partially configured builder can be reused safely.
type SettingsBuilder struct {
	settings Settings
}

// NewSettings starts from DefaultSettings.
//
//	settings := markdown.NewSettings().
//		DisableSplitLines().
//		QuoteStyle(markdown.QuoteStyleItalic).
//		Build()
func NewSettings() SettingsBuilder {
	return SettingsBuilder{settings: DefaultSettings()}
}

func (b SettingsBuilder) EnableSplitLines() SettingsBuilder {
	b.settings.splitLines = true
	return b
}

func (b SettingsBuilder) DisableSplitLines() SettingsBuilder {
	b.settings.splitLines = false
	return b
}

// SplitLines sets the policy from a flag value.
func (b SettingsBuilder) SplitLines(enabled bool) SettingsBuilder {
	b.settings.splitLines = enabled
	return b
}

func (b SettingsBuilder) QuoteStyle(style QuoteStyle) SettingsBuilder {
	b.settings.quoteStyle = style
	return b
}

func (b SettingsBuilder) NoteStyle(style NoteStyle) SettingsBuilder {
	b.settings.noteStyle = style
	return b
}

// Build returns the settings snapshot. Styles outside the known set fall
// back to their defaults.
func (b SettingsBuilder) Build() Settings {
	s := b.settings
	if !s.quoteStyle.valid() {
		s.quoteStyle = QuoteStyleBlockQuote
	}
	if !s.noteStyle.valid() {
		s.noteStyle = NoteStylePlain
	}
	return s
}
