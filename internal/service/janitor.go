package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/cleanup"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
)

// Janitor rejects check-ins stuck in pending past their day. A crashed or
// timed-out adjudication leaves such rows behind; sweeping them keeps the
// retry path open and the idempotency guard honest.
type Janitor struct {
	repo  repository.CheckInsRepositoryI
	blobs BlobStoreI
	cron  *cron.Cron
}

func NewJanitor(checkInsRepo repository.CheckInsRepositoryI, blobs BlobStoreI) *Janitor {
	if checkInsRepo == nil || blobs == nil {
		log.Fatal("provided nil dependencies to janitor")
	}
	return &Janitor{
		repo:  checkInsRepo,
		blobs: blobs,
		cron:  cron.New(),
	}
}

// Start schedules the nightly sweep and registers the stop with cleanup.
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("10 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		j.Sweep(ctx)
	}); err != nil {
		return err
	}
	j.cron.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping janitor cron",
		F: func() error {
			<-j.cron.Stop().Done()
			return nil
		},
	})
	return nil
}

// Sweep finalizes every pending check-in from before today as rejected and
// discards its evidence blob.
func (j *Janitor) Sweep(ctx context.Context) {
	cutoff := dates.DayStart(time.Now())
	stale, err := j.repo.ListStalePending(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "listing stale pending check-ins failed", "error", err.Error())
		return
	}
	swept := 0
	for _, c := range stale {
		err := j.repo.Finalize(ctx, c.ID, entity.StatusRejected,
			"Verification never completed and the attempt expired.", 0)
		if err != nil && !errors.Is(err, errorvalues.ErrCheckInNotFound) {
			slog.ErrorContext(ctx, "rejecting stale check-in failed", "check_in_id", c.ID, "error", err.Error())
			continue
		}
		if c.ImageKey != "" {
			if err := j.blobs.Delete(ctx, c.ImageKey); err != nil {
				slog.WarnContext(ctx, "deleting stale evidence blob failed", "key", c.ImageKey, "error", err.Error())
			}
		}
		swept++
	}
	if swept > 0 || len(stale) > 0 {
		slog.InfoContext(ctx, "stale pending sweep finished", "found", len(stale), "swept", swept)
	}
}
