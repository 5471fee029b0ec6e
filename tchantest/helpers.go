// Package tchantest provides test-only helpers for exercising code built
// on [github.com/arvindmenon/tchan]: fan-out senders, a drain-to-slice
// reader, and a bounded-wait assertion for events driven by goroutines
// the test doesn't otherwise synchronize with. It is not imported by the
// tchan package itself.
package tchantest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/arvindmenon/tchan"
)

// FanOutSend spawns n goroutines, each sending every value returned by
// values(worker) to ch in order, and waits for all of them to finish. It
// requires every send to succeed — a worker stops at its first send
// failure (e.g. the channel closed mid-run), and once every worker has
// returned, the first such failure fails the test.
//
// This is the producer half of a multi-writer uniqueness check: tests
// only need to supply per-worker value slices, not hand-roll a
// sync.WaitGroup and error plumbing.
func FanOutSend[T any](t *testing.T, ch *tchan.Channel[T], n int, values func(worker int) []T) {
	t.Helper()

	g := new(errgroup.Group)
	for w := 0; w < n; w++ {
		w := w
		g.Go(func() error {
			for _, v := range values(w) {
				if err := ch.Send(v); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// DrainAll receives from ch until it reports absent, returning every
// value observed in receive order. It blocks; callers typically run it
// after arranging for ch to eventually close (directly, or via a
// producer goroutine under test).
func DrainAll[T any](ch *tchan.Channel[T]) []T {
	var got []T
	for {
		v, ok := ch.Receive()
		if !ok {
			return got
		}
		got = append(got, v)
	}
}

// EventuallyTrue polls cond until it returns true or timeout elapses,
// sleeping interval between attempts, and fails the test if the deadline
// passes first. Useful for asserting on state a background goroutine
// mutates — e.g. that a [tchan.Select] loop has processed a given number
// of dispatches — without reaching into the package's internal
// condition variables.
func EventuallyTrue(t *testing.T, timeout, interval time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition was never true within %s", timeout)
		}
		time.Sleep(interval)
	}
}
