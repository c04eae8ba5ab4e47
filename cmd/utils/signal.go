/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the subdivision project. */

package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	errs "github.com/subdivision-css/subdivision/cmd/errors"
)

// WatchSignals returns a context that is cancelled on SIGINT or SIGTERM,
// with errs.ErrTerminatedByUser as its cause.
// Calling stop releases the watcher.
func WatchSignals(parent context.Context) (ctx context.Context, stop func()) {
	log.Debug("Starting signal watcher")

	ctx, cancel := context.WithCancelCause(parent)

	// SA1016: syscall.SIGKILL cannot be trapped
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			log.Debugf("Received %s", sig)
			cancel(errs.ErrTerminatedByUser)
		case <-ctx.Done():
		}

		signal.Stop(sigs)
		log.Debugf("Signal watcher done: %v", context.Cause(ctx))
	}()

	return ctx, func() { cancel(context.Canceled) }
}
