package doctors

import (
	"context"
	"time"

	"labclinics-service/internal/app/services/core/directory"

	"go.uber.org/zap"
)

// DoctorWatcher keeps a live snapshot of the collection. It broadcasts the
// initial read on start and a fresh full read after every change event, so
// stream subscribers always hold a complete, consistent view.
type DoctorWatcher struct {
	Log              *zap.Logger
	DoctorRepository DoctorRepository
	SnapshotHub      *directory.SnapshotHub

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDoctorWatcher(logger *zap.Logger, doctorRepository DoctorRepository, snapshotHub *directory.SnapshotHub) *DoctorWatcher {
	return &DoctorWatcher{
		Log:              logger,
		DoctorRepository: doctorRepository,
		SnapshotHub:      snapshotHub,
		done:             make(chan struct{}),
	}
}

// Start broadcasts the initial snapshot and begins following the change
// stream in the background. A dead stream is reopened after a short backoff.
func (w *DoctorWatcher) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	if err := w.refresh(ctx); err != nil {
		cancel()
		return err
	}

	go w.follow(ctx)
	return nil
}

// Stop cancels the watcher and waits for the follower to exit.
func (w *DoctorWatcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
}

func (w *DoctorWatcher) follow(ctx context.Context) {
	defer close(w.done)

	for {
		changes, err := w.DoctorRepository.WatchChanges(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.Log.Error("failed to open doctor change stream, retrying", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
				continue
			}
		}

		for range changes {
			if err := w.refresh(ctx); err != nil {
				w.Log.Error("failed to refresh doctor snapshot", zap.Error(err))
			}
		}
		if ctx.Err() != nil {
			return
		}

		// The stream died on its own. Reopening takes the same backoff as a
		// failed open so a flapping stream cannot spin the follower.
		w.Log.Error("doctor change stream closed, reopening")
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (w *DoctorWatcher) refresh(ctx context.Context) error {
	readCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	doctors, err := w.DoctorRepository.FindAll(readCtx)
	if err != nil {
		return err
	}

	w.SnapshotHub.Broadcast(doctors)
	w.Log.Debug("doctor snapshot refreshed", zap.Int("count", len(doctors)))
	return nil
}
