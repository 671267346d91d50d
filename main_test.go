package main

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchInterrupt(t *testing.T) {
	t.Run("interrupt aborts a blocked game", func(t *testing.T) {
		sigs := make(chan os.Signal, 1)
		aborted := make(chan struct{})
		stop := watchInterrupt(sigs, func() { close(aborted) })
		defer stop()

		sigs <- os.Interrupt
		select {
		case <-aborted:
		case <-time.After(time.Second):
			t.Fatal("interrupt did not abort")
		}
	})

	t.Run("stopped watch ignores interrupts", func(t *testing.T) {
		sigs := make(chan os.Signal, 1)
		var aborted atomic.Bool
		stop := watchInterrupt(sigs, func() { aborted.Store(true) })
		stop()

		sigs <- os.Interrupt
		require.Never(t, aborted.Load, 100*time.Millisecond, 10*time.Millisecond)
	})
}
