package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler returns a context cancelled on SIGINT/SIGTERM.
// onInterrupt runs once before cancellation so the caller can stop cleanly;
// a second signal exits immediately.
func SetupInterruptHandler(parent context.Context, onInterrupt func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
			signal.Stop(sig)
			return
		}

		fmt.Println("\nInterrupt received. Stopping...")
		if onInterrupt != nil {
			onInterrupt()
		}
		cancel()

		select {
		case <-sig:
			fmt.Println("\nExiting due to interrupt.")
			os.Exit(1)
		case <-parent.Done():
		}
	}()

	return ctx, cancel
}
