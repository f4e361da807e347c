package locks

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically expires overdue locks. The sweep and concurrent
// acquires serialise through the event store, so a racing acquire either
// observes the active row (conflict) or the sweep wins and the acquire
// succeeds, never both.
type Sweeper struct {
	service  *Service
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper over the lock service.
func NewSweeper(service *Service, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval}
}

// Start launches the background sweep loop.
func (w *Sweeper) Start(ctx context.Context) {
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)

	slog.Info("Lock sweeper started", "interval", w.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (w *Sweeper) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	slog.Info("Lock sweeper stopped")
}

func (w *Sweeper) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.service.Sweep(ctx)
			if err != nil {
				slog.Error("Lock sweep failed", "error", err)
				continue
			}
			if count > 0 {
				slog.Info("Expired stale locks", "count", count)
			}
		}
	}
}
