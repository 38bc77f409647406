package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mrlokans/highlights/internal/render/markdown"
)

type (
	Config struct {
		HTTP
		Global
		Render
		Database
		Export
		ExportSync
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Render struct {
		SplitLines bool
		QuoteStyle string // blockquote, italic, plain, bold
		NoteStyle  string // plain, bold, italic, blockquote, nested_quote
	}
	Database struct {
		Path string
	}
	Export struct {
		Dir string // Directory for markdown exports
	}
	ExportSync struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Render defaults
	v.SetDefault("split_lines", true)
	v.SetDefault("quote_style", string(markdown.QuoteStyleBlockQuote))
	v.SetDefault("note_style", string(markdown.NoteStylePlain))

	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("export_sync_enabled", false)
	v.SetDefault("export_sync_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Render: Render{
			SplitLines: v.GetBool("SPLIT_LINES"),
			QuoteStyle: v.GetString("QUOTE_STYLE"),
			NoteStyle:  v.GetString("NOTE_STYLE"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
		ExportSync: ExportSync{
			Enabled:  v.GetBool("EXPORT_SYNC_ENABLED"),
			Schedule: v.GetString("EXPORT_SYNC_SCHEDULE"),
		},
	}
}

// RenderSettings builds markdown settings from the configured render defaults.
func (c *Config) RenderSettings() (markdown.Settings, error) {
	quoteStyle, err := markdown.ParseQuoteStyle(c.Render.QuoteStyle)
	if err != nil {
		return markdown.Settings{}, fmt.Errorf("invalid QUOTE_STYLE: %w", err)
	}
	noteStyle, err := markdown.ParseNoteStyle(c.Render.NoteStyle)
	if err != nil {
		return markdown.Settings{}, fmt.Errorf("invalid NOTE_STYLE: %w", err)
	}
	return markdown.NewSettings().
		SplitLines(c.Render.SplitLines).
		QuoteStyle(quoteStyle).
		NoteStyle(noteStyle).
		Build(), nil
}
