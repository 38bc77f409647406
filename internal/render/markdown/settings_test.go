package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		settings := DefaultSettings()

		assert.True(t, settings.SplitLinesEnabled())
		assert.Equal(t, QuoteStyleBlockQuote, settings.QuoteStyle())
		assert.Equal(t, NoteStylePlain, settings.NoteStyle())
		assert.Equal(t, settings, NewSettings().Build())
	})

	t.Run("builder sets every field", func(t *testing.T) {
		settings := NewSettings().
			DisableSplitLines().
			QuoteStyle(QuoteStyleBold).
			NoteStyle(NoteStyleNestedQuote).
			Build()

		assert.False(t, settings.SplitLinesEnabled())
		assert.Equal(t, QuoteStyleBold, settings.QuoteStyle())
		assert.Equal(t, NoteStyleNestedQuote, settings.NoteStyle())
	})

	t.Run("builder calls commute", func(t *testing.T) {
		a := NewSettings().QuoteStyle(QuoteStyleItalic).NoteStyle(NoteStyleBold).DisableSplitLines().Build()
		b := NewSettings().DisableSplitLines().NoteStyle(NoteStyleBold).QuoteStyle(QuoteStyleItalic).Build()

		assert.Equal(t, a, b)
	})

	t.Run("last write wins", func(t *testing.T) {
		settings := NewSettings().
			DisableSplitLines().
			EnableSplitLines().
			QuoteStyle(QuoteStylePlain).
			QuoteStyle(QuoteStyleItalic).
			Build()

		assert.True(t, settings.SplitLinesEnabled())
		assert.Equal(t, QuoteStyleItalic, settings.QuoteStyle())
	})

	t.Run("builder values are independent", func(t *testing.T) {
		base := NewSettings().QuoteStyle(QuoteStyleBold)
		italic := base.NoteStyle(NoteStyleItalic).Build()
		plain := base.Build()

		assert.Equal(t, NoteStyleItalic, italic.NoteStyle())
		assert.Equal(t, NoteStylePlain, plain.NoteStyle())
	})

	t.Run("unknown styles fall back to defaults", func(t *testing.T) {
		settings := NewSettings().QuoteStyle("underline").NoteStyle("sparkly").Build()

		assert.Equal(t, QuoteStyleBlockQuote, settings.QuoteStyle())
		assert.Equal(t, NoteStylePlain, settings.NoteStyle())
	})

	t.Run("split lines from flag value", func(t *testing.T) {
		assert.False(t, NewSettings().SplitLines(false).Build().SplitLinesEnabled())
		assert.True(t, NewSettings().DisableSplitLines().SplitLines(true).Build().SplitLinesEnabled())
	})
}

func TestParseStyles(t *testing.T) {
	t.Run("quote styles", func(t *testing.T) {
		for input, want := range map[string]QuoteStyle{
			"blockquote":  QuoteStyleBlockQuote,
			"BlockQuote":  QuoteStyleBlockQuote,
			"block-quote": QuoteStyleBlockQuote,
			"italic":      QuoteStyleItalic,
			" plain ":     QuoteStylePlain,
			"BOLD":        QuoteStyleBold,
		} {
			got, err := ParseQuoteStyle(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("note styles", func(t *testing.T) {
		for input, want := range map[string]NoteStyle{
			"plain":        NoteStylePlain,
			"bold":         NoteStyleBold,
			"Italic":       NoteStyleItalic,
			"blockquote":   NoteStyleBlockQuote,
			"nested_quote": NoteStyleNestedQuote,
			"nested-quote": NoteStyleNestedQuote,
			"NestedQuote":  NoteStyleNestedQuote,
		} {
			got, err := ParseNoteStyle(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ParseQuoteStyle("nested_quote")
		assert.ErrorContains(t, err, "unknown quote style")

		_, err = ParseNoteStyle("underline")
		assert.ErrorContains(t, err, "unknown note style")
	})

	t.Run("style lists are copies", func(t *testing.T) {
		styles := QuoteStyles()
		styles[0] = "changed"

		assert.Equal(t, QuoteStyleBlockQuote, QuoteStyles()[0])
		assert.Len(t, NoteStyles(), 5)
	})
}
