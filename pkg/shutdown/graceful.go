package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/job-board/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// StopFunc adapts a plain function (e.g. a wire cleanup) to Stoppable
type StopFunc func(ctx context.Context) error

func (f StopFunc) Shutdown(ctx context.Context) error {
	return f(ctx)
}

// Graceful blocks until one of signals arrives, then stops every target in
// order within a shared timeout
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	Stop(timeout, log, targets...)
}

// Watch runs Graceful in the background. The returned channel is closed once
// every target has been stopped, so callers can wait for the drain to finish.
func Watch(signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Graceful(signals, timeout, log, targets...)
	}()
	return done
}

// Stop runs the shutdown sequence without waiting for a signal
func Stop(timeout time.Duration, log *logging.Logger, targets ...Stoppable) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	failed := 0
	for _, t := range targets {
		if t == nil {
			continue
		}
		if err := t.Shutdown(ctx); err != nil {
			failed++
			log.Warn("graceful shutdown step failed", "err", err)
		}
	}

	if failed > 0 {
		log.Warn("graceful shutdown completed with errors", "failed", failed)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
}
