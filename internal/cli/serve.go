package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/entrypoint"
	"github.com/mrlokans/highlights/internal/highlights"
)

// ServeCommand starts the HTTP API and the optional scheduled export.
type ServeCommand struct {
	Host    string
	Port    int
	Version string

	cfg *config.Config
}

func NewServeCommand(cfg *config.Config, version string) *ServeCommand {
	return &ServeCommand{cfg: cfg, Version: version}
}

func (cmd *ServeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)

	fs.StringVar(&cmd.Host, "host", cmd.cfg.HTTP.Host, "Address to listen on (HOST)")
	fs.IntVar(&cmd.Port, "port", int(cmd.cfg.HTTP.Port), "Port to listen on (PORT)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start the HTTP API. Set EXPORT_SYNC_ENABLED=true to also export\n")
		fmt.Fprintf(os.Stderr, "stored books to EXPORT_DIR on EXPORT_SYNC_SCHEDULE.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return highlights.GeneralError(fmt.Sprintf("unexpected arguments: %v", fs.Args()))
	}
	if cmd.Port <= 0 || cmd.Port > 65535 {
		return highlights.GeneralError(fmt.Sprintf("invalid -port %d", cmd.Port))
	}

	cmd.cfg.HTTP.Host = cmd.Host
	cmd.cfg.HTTP.Port = int32(cmd.Port)
	return nil
}

func (cmd *ServeCommand) Run() error {
	return entrypoint.Run(cmd.cfg, cmd.Version)
}
