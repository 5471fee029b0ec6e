package tchan

import "sync"

// kind tags which variant a [Channel] wraps. It is fixed at construction
// and never changes.
type kind int

const (
	kindBounded kind = iota
	kindRendezvous
)

// subscriber is a one-shot wake-up handle registered by [Select] on a
// channel: a notification channel plus a tag the subscriber chose (its
// case index). Its notification channel is a plain [BoundedChannel], not
// another [Channel] façade — it never itself needs a subscriber list.
type subscriber struct {
	ch  *BoundedChannel[int]
	tag int
}

// Channel is the unified façade over [BoundedChannel] and
// [RendezvousChannel]: constructed with a capacity, it wraps a
// RendezvousChannel when capacity is 0 and a BoundedChannel otherwise,
// and presents one interface over either. It additionally owns the
// subscriber list that [Select] uses to wait on several channels at once.
type Channel[T any] struct {
	k       kind
	bounded *BoundedChannel[T]
	rendez  *RendezvousChannel[T]

	subMu       sync.Mutex
	subscribers []subscriber
}

// NewChannel constructs a façade over a fresh channel of the given
// capacity: capacity 0 yields a rendezvous channel, capacity >= 1 yields a
// bounded channel of that capacity.
func NewChannel[T any](capacity int) *Channel[T] {
	c := &Channel[T]{}
	if capacity == 0 {
		c.k = kindRendezvous
		c.rendez = NewRendezvousChannel[T]()
	} else {
		c.k = kindBounded
		c.bounded = NewBoundedChannel[T](capacity)
	}
	return c
}

// Send delegates to the underlying variant and then notifies subscribers.
//
// For the bounded variant, send completes and releases the channel's own
// lock, then notify_subscribers runs: every subscriber registered at the
// moment the value became readable is notified before Send returns.
//
// For the rendezvous variant, sendWithoutWait deposits the value and
// obtains a ticket, notify_subscribers runs next, and only then does
// waitOnTicket park the sender. Notification must happen after the value
// is visible to a would-be receiver (otherwise a receiver woken by
// [Select] would observe an empty slot) and before the sender parks on
// the ticket (otherwise the only receiver — the Select consumer — is not
// yet awake when the sender begins waiting).
func (c *Channel[T]) Send(v T) error {
	switch c.k {
	case kindBounded:
		if err := c.bounded.Send(v); err != nil {
			return err
		}
		c.notifySubscribers()
		return nil
	default:
		ticket, err := c.rendez.sendWithoutWait(v)
		if err != nil {
			return err
		}
		c.notifySubscribers()
		return c.rendez.waitOnTicket(ticket)
	}
}

// SendChain is [Channel.Send] returning the façade itself, for fluent
// chained sends (`ch.SendChain(a).SendChain(b)`). It panics on a
// [*WriteToClosedError] instead of returning one, since a fluent chain has
// no slot to carry an error through.
func (c *Channel[T]) SendChain(v T) *Channel[T] {
	if err := c.Send(v); err != nil {
		panic(err)
	}
	return c
}

// TrySend is the non-blocking bounded-only send: for a bounded façade it
// behaves like [BoundedChannel.TrySend] and, when it succeeds, also
// notifies subscribers as [Channel.Send] does. A
// rendezvous façade has no non-blocking send — delivery requires a
// receiver already parked — so it always reports false.
func (c *Channel[T]) TrySend(v T) bool {
	if c.k != kindBounded {
		return false
	}
	ok := c.bounded.TrySend(v)
	if ok {
		c.notifySubscribers()
	}
	return ok
}

// Receive delegates to the underlying variant.
func (c *Channel[T]) Receive() (T, bool) {
	if c.k == kindBounded {
		return c.bounded.Receive()
	}
	return c.rendez.Receive()
}

// TryReceive delegates to the underlying variant, never blocking.
func (c *Channel[T]) TryReceive() (T, bool) {
	if c.k == kindBounded {
		return c.bounded.TryReceive()
	}
	return c.rendez.TryReceive()
}

// MustReceive receives a mandatory value, panicking with a
// [*ReadOfAbsentError] if Receive returned absent. Receive itself is the
// non-panicking, optional-result counterpart.
func (c *Channel[T]) MustReceive() T {
	v, ok := c.Receive()
	if !ok {
		panic(&ReadOfAbsentError{})
	}
	return v
}

// Close is idempotent and delegates to the underlying variant.
func (c *Channel[T]) Close() {
	if c.k == kindBounded {
		c.bounded.Close()
		return
	}
	c.rendez.Close()
}

// IsLive delegates to the underlying variant.
func (c *Channel[T]) IsLive() bool {
	if c.k == kindBounded {
		return c.bounded.IsLive()
	}
	return c.rendez.IsLive()
}

// subscribe appends a subscriber record under the subscriber mutex, which
// is independent of the channel's own mutex to avoid any lock-order
// dependency between them.
func (c *Channel[T]) subscribe(notify *BoundedChannel[int], tag int) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers = append(c.subscribers, subscriber{ch: notify, tag: tag})
}

// notifySubscribers takes the subscriber mutex, attempts a non-blocking
// TrySend on each subscriber's notification channel in reverse
// registration order — favouring the most recently registered Select
// call, a pragmatic approximation of LIFO fairness among competing
// waiters on the same channel — and then clears the list. It must never
// hold the channel's own mutex while doing this: the subscriber channels
// are typically owned by a Select call, never nested inside the
// channel's lock.
func (c *Channel[T]) notifySubscribers() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for i := len(c.subscribers) - 1; i >= 0; i-- {
		c.subscribers[i].ch.TrySend(c.subscribers[i].tag)
	}
	c.subscribers = c.subscribers[:0]
}
