// Package signal turns SIGINT and SIGTERM into context cancellation so the
// retry loop can stop between attempts instead of dying mid-way.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a copy of parent that is cancelled when SIGINT or
// SIGTERM is received. onSignal, if non-nil, is called with the signal
// before the context is cancelled.
//
// Only the first signal is handled. Calling the returned stop function
// unregisters the handler and restores default signal behavior, so a
// second Ctrl-C after stop kills the process as usual.
func NotifyContext(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
