package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/highlights/internal/config"
	"github.com/mrlokans/highlights/internal/database"
	"github.com/mrlokans/highlights/internal/exporters"
	http_controllers "github.com/mrlokans/highlights/internal/http"
	"github.com/mrlokans/highlights/internal/render/markdown"
	"github.com/mrlokans/highlights/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// checkExportDir verifies the export directory exists and is writable by
// touching and removing an empty file.
func checkExportDir(dir string) error {
	log.Printf("Checking export directory: %s\n", dir)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("export directory %s does not exist: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export directory %s is not a directory", dir)
	}

	probe := filepath.Join(dir, ".highlights")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("export directory %s is not writable: %w", dir, err)
	}
	f.Close()
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("could not remove the test file from the export directory %s: %w", dir, err)
	}
	return nil
}

// Serve runs the server until SIGINT or SIGTERM, then shuts it down within the
// configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server stops accepting requests.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// NewExportScheduler wires the database, markdown renderer and exporter into a
// scheduler for the configured export directory.
func NewExportScheduler(cfg *config.Config, db *database.Database, settings markdown.Settings) *scheduler.ExportScheduler {
	markdownExporter := exporters.NewMarkdownExporter(cfg.Export.Dir, markdown.NewRenderer(settings))
	exporter := exporters.NewDatabaseMarkdownExporter(db, markdownExporter)
	return scheduler.NewExportScheduler(exporter, cfg.ExportSync.Schedule)
}

// Run starts the HTTP API and, when enabled, the scheduled markdown export.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting highlights v%s", version)

	settings, err := cfg.RenderSettings()
	if err != nil {
		return err
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	routerCfg := http_controllers.RouterConfig{
		Database: db,
		Books:    db,
		Settings: settings,
		Version:  version,
	}

	var exportScheduler *scheduler.ExportScheduler
	if cfg.ExportSync.Enabled {
		if err := checkExportDir(cfg.Export.Dir); err != nil {
			return err
		}
		exportScheduler = NewExportScheduler(cfg, db, settings)
		if err := exportScheduler.Start(context.Background()); err != nil {
			return err
		}
		routerCfg.Export = exportScheduler
	} else {
		log.Printf("Export sync disabled. Set 'EXPORT_SYNC_ENABLED=true' to export books to %s on a schedule.", cfg.Export.Dir)
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if exportScheduler != nil {
			exportScheduler.Stop()
		}
	}

	return Serve(router, cfg, onShutdown)
}
