package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/highlights/internal/cli"
	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/highlights"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	cfg := config.NewConfig()

	// Without a known command every argument belongs to convert.
	command, args := "convert", os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "convert", "import", "export", "serve", "help", "-h", "--help", "version":
			command, args = args[0], args[1:]
		}
	}

	switch command {
	case "convert":
		run(cli.NewConvertCommand(cfg), args)

	case "import":
		run(cli.NewImportCommand(cfg), args)

	case "export":
		run(cli.NewExportCommand(cfg), args)

	case "serve":
		run(cli.NewServeCommand(cfg, Version), args)

	case "version":
		fmt.Printf("highlights %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()
	}
}

func run(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		exit(err)
	}
	if err := cmd.Run(); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(highlights.ExitCode(err))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  convert   Render a Bookcision export as markdown (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import    Store Bookcision exports in the local database\n")
	fmt.Fprintf(os.Stderr, "  export    Write every stored book to a markdown file\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
