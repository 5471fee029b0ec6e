// Package tchan provides CSP-style typed channels and a multi-way Select
// over them.
//
// Producers and consumers running on distinct goroutines exchange typed
// values through first-in-first-out channels that are either buffered
// (bounded capacity) or synchronous (unbuffered rendezvous). [Select] lets
// a consumer wait on several channels at once and dispatch to the handler
// of whichever becomes readable first.
//
// # Channels
//
// [NewChannel] constructs the unified façade: pass capacity 0 for a
// rendezvous channel, or capacity >= 1 for a buffered channel of that
// size. Both variants share the same [Channel] API:
//
//	ints := tchan.NewChannel[int](4)
//	go func() {
//	    defer ints.Close()
//	    for i := 0; i < 5; i++ {
//	        if err := ints.Send(i); err != nil {
//	            return
//	        }
//	    }
//	}()
//	for {
//	    v, ok := ints.Receive()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v)
//	}
//
// [Channel.Send] blocks until delivery or closure; [Channel.TrySend] is
// the non-blocking bounded-only variant. [Channel.Receive] and
// [Channel.TryReceive] mirror that on the consumer side, returning false
// once a closed channel has drained its last buffered value.
// [Channel.MustReceive] composes a Receive with a non-optional sink,
// panicking with a [*ReadOfAbsentError] on an absent value, for callers
// that have already established the channel cannot be exhausted.
//
// A send on a closed channel fails with a [*WriteToClosedError]; for a
// rendezvous channel this also happens if Close runs after a value was
// deposited but before any receiver took it. Callers can test the failure
// kind with errors.Is against [ErrWriteToClosed].
//
// # Select
//
// [Select] accepts any number of cases built with [On] and fires at most
// one handler per call, choosing the lowest declaration-index case that
// is ready:
//
//	tchan.Select(
//	    tchan.On(ints, func(v int) { fmt.Println("int", v) }),
//	    tchan.On(strs, func(v string) { fmt.Println("str", v) }),
//	)
//
// Select never chooses among pending sends — only receives. It returns
// without dispatching when every case's channel is non-live (closed and
// drained) at the time it checks: on entry, or after being woken. A call
// that is already waiting is woken only by a later send on one of its
// channels; Close does not notify Select, so a waiting call whose channels
// are closed without a further send stays blocked. Callers that want to
// keep reacting to multiple channels call Select again in a loop.
//
// # Lower-level types
//
// [RingBuffer] is the unsynchronized circular queue backing a bounded
// channel. [BoundedChannel] and [RendezvousChannel] are the two channel
// variants [Channel] wraps; they are usable directly when a caller knows
// in advance which variant it wants and doesn't need Select support.
//
// The tchan/tchantest subpackage holds test-only helpers (goroutine
// fan-out, draining a channel to a slice, polling until a condition holds) and
// is not part of this package's API surface.
package tchan
