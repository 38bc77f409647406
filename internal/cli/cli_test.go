package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/highlights"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

const stoicJSON = `{
  "asin": "B000FC1PJI",
  "title": "Meditations",
  "authors": "Marcus Aurelius",
  "highlights": [
    {"text": "You have power over your mind", "isNoteOnly": false,
     "location": {"url": "kindle://12", "value": 12}, "note": null},
    {"text": "ignored", "isNoteOnly": true,
     "location": {"url": "kindle://20", "value": 20}, "note": "Read every morning"},
    {"text": "Waste no more time", "isNoteOnly": false,
     "location": {"url": "kindle://40", "value": 40}, "note": "Daily reminder"}
  ]
}`

const stoicMarkdown = "# Meditations\n\n*by Marcus Aurelius*\n\n" +
	"---\n\n> You have power over your mind\n\n[Location 12](kindle://12)\n\n" +
	"---\n\nRead every morning\n\n[Location 20](kindle://20)\n\n" +
	"---\n\n> Waste no more time\n\nDaily reminder\n\n[Location 40](kindle://40)\n\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Render:   config.Render{SplitLines: true, QuoteStyle: "blockquote", NoteStyle: "plain"},
		Database: config.Database{Path: filepath.Join(dir, "highlights.db")},
		Export:   config.Export{Dir: filepath.Join(dir, "markdown")},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runConvert(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewConvertCommand(cfg)
	var out bytes.Buffer
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &out
	if err := cmd.ParseFlags(args); err != nil {
		return "", err
	}
	err := cmd.Run()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Run("reads stdin and writes stdout", func(t *testing.T) {
		out, err := runConvert(t, testConfig(t), stoicJSON)

		require.NoError(t, err)
		assert.Equal(t, stoicMarkdown, out)
	})

	t.Run("reads input file", func(t *testing.T) {
		input := writeFile(t, "book.json", stoicJSON)

		out, err := runConvert(t, testConfig(t), "", input)

		require.NoError(t, err)
		assert.Equal(t, stoicMarkdown, out)
	})

	t.Run("writes output file", func(t *testing.T) {
		input := writeFile(t, "book.json", stoicJSON)
		output := filepath.Join(t.TempDir(), "book.md")

		out, err := runConvert(t, testConfig(t), "", input, output)

		require.NoError(t, err)
		assert.Empty(t, out)
		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, stoicMarkdown, string(content))
	})

	t.Run("flags override configuration", func(t *testing.T) {
		out, err := runConvert(t, testConfig(t), stoicJSON,
			"-split-lines=false", "-quote-style", "italic", "-note-style", "nested-quote")

		require.NoError(t, err)
		assert.NotContains(t, out, "---")
		assert.Contains(t, out, "\n*Waste no more time*\n\nDaily reminder\n\n")
		assert.Contains(t, out, "\n> Read every morning\n\n")
	})

	t.Run("configuration provides defaults", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Render.QuoteStyle = "bold"

		out, err := runConvert(t, cfg, stoicJSON)

		require.NoError(t, err)
		assert.Contains(t, out, "**You have power over your mind**")
	})

	t.Run("sample ignores input", func(t *testing.T) {
		out, err := runConvert(t, testConfig(t), "not json", "-sample")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# How Life Imitates Chess"))
		assert.Contains(t, out, "[Location 295](kindle://book?action=open&asin=B0049U443Q&location=295)")
	})

	t.Run("missing input file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.json")

		_, err := runConvert(t, testConfig(t), "", missing)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot read input file "+missing)
		assert.Equal(t, highlights.ExitIOErr, highlights.ExitCode(err))
	})

	t.Run("output cannot be created", func(t *testing.T) {
		input := writeFile(t, "book.json", stoicJSON)
		output := filepath.Join(t.TempDir(), "missing", "book.md")

		_, err := runConvert(t, testConfig(t), "", input, output)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot write to file "+output)
		assert.Equal(t, highlights.ExitIOErr, highlights.ExitCode(err))
	})

	t.Run("invalid json", func(t *testing.T) {
		input := writeFile(t, "book.json", `{"title": "Meditations", `)

		_, err := runConvert(t, testConfig(t), "", input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bookcision json file")
		assert.Equal(t, highlights.ExitDataErr, highlights.ExitCode(err))
	})

	t.Run("invalid json keeps existing output", func(t *testing.T) {
		input := writeFile(t, "book.json", `[]`)
		output := writeFile(t, "book.md", "keep me")

		_, err := runConvert(t, testConfig(t), "", input, output)

		require.Error(t, err)
		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(content))
	})

	t.Run("invalid style", func(t *testing.T) {
		_, err := runConvert(t, testConfig(t), stoicJSON, "-quote-style", "fancy")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid -quote-style")
		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("invalid configured style", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Render.NoteStyle = "loud"

		_, err := runConvert(t, cfg, stoicJSON)

		assert.ErrorContains(t, err, "invalid -note-style")
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := runConvert(t, testConfig(t), "", "a.json", "b.md", "c")

		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := runConvert(t, testConfig(t), "", "-colour")

		require.Error(t, err)
		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("help", func(t *testing.T) {
		_, err := runConvert(t, testConfig(t), "", "-h")

		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}

func TestImportCommand(t *testing.T) {
	t.Run("requires files", func(t *testing.T) {
		err := NewImportCommand(testConfig(t)).ParseFlags(nil)
		assert.ErrorContains(t, err, "no input files")
	})

	t.Run("imports files", func(t *testing.T) {
		cfg := testConfig(t)
		cmd := NewImportCommand(cfg)
		require.NoError(t, cmd.ParseFlags([]string{writeFile(t, "book.json", stoicJSON)}))

		require.NoError(t, cmd.Run())

		db, err := database.NewDatabase(cfg.Database.Path)
		require.NoError(t, err)
		defer db.Close()
		books, err := db.LoadBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Meditations", books[0].Title())
		assert.Equal(t, 3, books[0].Len())
	})

	t.Run("continues after a bad file", func(t *testing.T) {
		cfg := testConfig(t)
		cmd := NewImportCommand(cfg)
		bad := writeFile(t, "bad.json", "{")
		good := writeFile(t, "good.json", stoicJSON)
		require.NoError(t, cmd.ParseFlags([]string{"-db", cfg.Database.Path, bad, good}))

		err := cmd.Run()

		require.Error(t, err)
		assert.Equal(t, highlights.ExitDataErr, highlights.ExitCode(err))

		db, err := database.NewDatabase(cfg.Database.Path)
		require.NoError(t, err)
		defer db.Close()
		books, err := db.LoadBooks()
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("exports imported books", func(t *testing.T) {
		cfg := testConfig(t)
		importCmd := NewImportCommand(cfg)
		require.NoError(t, importCmd.ParseFlags([]string{writeFile(t, "book.json", stoicJSON)}))
		require.NoError(t, importCmd.Run())

		exportCmd := NewExportCommand(cfg)
		require.NoError(t, exportCmd.ParseFlags(nil))
		require.NoError(t, exportCmd.Run())

		content, err := os.ReadFile(filepath.Join(cfg.Export.Dir, "Meditations.md"))
		require.NoError(t, err)
		assert.Equal(t, stoicMarkdown, string(content))
	})

	t.Run("applies style flags", func(t *testing.T) {
		cfg := testConfig(t)
		importCmd := NewImportCommand(cfg)
		require.NoError(t, importCmd.ParseFlags([]string{writeFile(t, "book.json", stoicJSON)}))
		require.NoError(t, importCmd.Run())

		output := filepath.Join(t.TempDir(), "vault")
		exportCmd := NewExportCommand(cfg)
		require.NoError(t, exportCmd.ParseFlags([]string{"-output", output, "-note-style", "bold"}))
		require.NoError(t, exportCmd.Run())

		content, err := os.ReadFile(filepath.Join(output, "Meditations.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "**Daily reminder**")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		err := NewExportCommand(testConfig(t)).ParseFlags([]string{"extra"})
		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})
}

func TestServeCommand(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		err := NewServeCommand(testConfig(t), "test").ParseFlags([]string{"-h"})

		assert.ErrorIs(t, err, flag.ErrHelp)
	})

	t.Run("unknown flag", func(t *testing.T) {
		err := NewServeCommand(testConfig(t), "test").ParseFlags([]string{"--bogus"})

		require.Error(t, err)
		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		err := NewServeCommand(testConfig(t), "test").ParseFlags([]string{"extra"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected arguments")
		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("invalid port", func(t *testing.T) {
		err := NewServeCommand(testConfig(t), "test").ParseFlags([]string{"-port", "70000"})

		assert.Equal(t, highlights.ExitGeneral, highlights.ExitCode(err))
	})

	t.Run("flags override listen address", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.HTTP = config.HTTP{Host: "0.0.0.0", Port: 8189}
		cmd := NewServeCommand(cfg, "test")

		require.NoError(t, cmd.ParseFlags([]string{"-host", "127.0.0.1", "-port", "9000"}))

		assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
		assert.Equal(t, int32(9000), cfg.HTTP.Port)
	})

	t.Run("configuration provides defaults", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.HTTP = config.HTTP{Host: "localhost", Port: 8189}
		cmd := NewServeCommand(cfg, "test")

		require.NoError(t, cmd.ParseFlags(nil))

		assert.Equal(t, "localhost", cmd.Host)
		assert.Equal(t, 8189, cmd.Port)
	})
}

type brokenRenderer struct{}

func (brokenRenderer) Render(book *highlights.Book, out io.Writer) error {
	io.WriteString(out, strings.Repeat("# "+book.Title()+"\n", 2048))
	return highlights.IOError("cannot write markdown notes", errors.New("disk full"))
}

func TestWriteOutput(t *testing.T) {
	t.Run("removes partial file on failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.md")

		err := writeOutput(path, highlights.ChessBook(), brokenRenderer{})

		require.Error(t, err)
		assert.Equal(t, highlights.ExitIOErr, highlights.ExitCode(err))
		assert.NoFileExists(t, path)
	})

	t.Run("keeps complete file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.md")

		require.NoError(t, writeOutput(path, highlights.ChessBook(), markdown.NewDefaultRenderer()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "# How Life Imitates Chess"))
	})
}
