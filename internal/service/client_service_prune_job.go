package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/config"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/store"
)

const (
	defaultJournalRetention     = 30 * 24 * time.Hour
	defaultJournalPruneInterval = 6 * time.Hour
)

type journalPruneJob struct {
	journal   store.AttemptJournalRepository
	retention time.Duration
	interval  time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJournalPruneJob creates a journalPruneJob that deletes attempts older
// than the configured retention window. Non-positive retention or interval
// fall back to defaults. The job is idle until Start is called.
func NewJournalPruneJob(journal store.AttemptJournalRepository, cfg config.ClientJournal, logger *logger.Logger) JournalPruneJob {
	retention := cfg.Retention
	if retention <= 0 {
		retention = defaultJournalRetention
	}
	interval := cfg.PruneInterval
	if interval <= 0 {
		interval = defaultJournalPruneInterval
	}

	return &journalPruneJob{journal: journal, retention: retention, interval: interval, logger: logger}
}

// Start implements JournalPruneJob. It stops any previously running job, then
// launches a background goroutine that prunes once immediately and again every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *journalPruneJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.prune(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

// Stop implements JournalPruneJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *journalPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *journalPruneJob) prune(ctx context.Context) {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.journal.DeleteAttemptsBefore(ctx, cutoff)
	if err != nil {
		j.logger.Err(err).
			Str("func", "journalPruneJob.prune").
			Time("cutoff", cutoff).
			Msg("failed to prune attempt journal")
		return
	}

	if deleted > 0 {
		j.logger.Info().
			Str("func", "journalPruneJob.prune").
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("pruned old journal attempts")
	}
}
