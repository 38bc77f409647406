package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/highlights/internal/exporters"
)

// BookExporter exports every stored book.
type BookExporter interface {
	ExportAll() (exporters.ExportResult, error)
}

// SyncStatus describes the last export run.
type SyncStatus struct {
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	Status     string     `json:"status,omitempty"`  // "success", "failed", ""
	Message    string     `json:"message,omitempty"` // Error message or stats summary
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// ExportScheduler periodically exports stored books to markdown files.
type ExportScheduler struct {
	exporter BookExporter
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	runMu      sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
	status     SyncStatus
}

// NewExportScheduler creates a new scheduler instance
func NewExportScheduler(exporter BookExporter, schedule string) *ExportScheduler {
	return &ExportScheduler{
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the export job and starts the cron loop. The scheduler
// stops when ctx is cancelled.
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Export scheduler: started with schedule '%s'. Next run: %v", s.schedule, s.nextRunLocked())

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running export to finish and stops the scheduler.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.mu.Unlock()

	// A job in flight updates the status under mu, so wait unlocked.
	<-s.cron.Stop().Done()

	log.Printf("Export scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *ExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next export will occur
func (s *ExportScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.nextRunLocked()
	if next.IsZero() {
		return nil
	}
	return &next
}

func (s *ExportScheduler) nextRunLocked() time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			return entry.Next
		}
	}
	return time.Time{}
}

// Status returns the outcome of the last export.
func (s *ExportScheduler) Status() SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// RunNow performs an export synchronously. Concurrent calls are serialized.
func (s *ExportScheduler) RunNow() SyncStatus {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log.Printf("Export sync: starting")
	startTime := time.Now()

	result, err := s.exporter.ExportAll()

	status := SyncStatus{LastSyncAt: &startTime}
	if err != nil {
		status.Status = "failed"
		status.Message = fmt.Sprintf("Export failed: %v", err)
	} else {
		status.Status = "success"
		status.Message = fmt.Sprintf("Exported %d books, %d highlights in %v (%d failed)",
			result.BooksProcessed, result.HighlightsProcessed,
			time.Since(startTime).Round(time.Millisecond), result.BooksFailed)
	}
	log.Printf("Export sync: %s", status.Message)

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	return status
}
