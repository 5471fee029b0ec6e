package tchan

import "sync"

// RendezvousChannel implements capacity-0 semantics: Send does not return
// until a receiver has taken the value, or the channel closed while the
// value was still undelivered. The single-slot hand-off is guarded by a
// monotonically increasing ticket counter so a parked sender can tell
// "my value was taken" apart from "the slot emptied because a later
// sender's value was taken instead".
type RendezvousChannel[T any] struct {
	mu             sync.Mutex
	slotFree       *sync.Cond
	slotFilled     *sync.Cond
	ticketAdvanced *sync.Cond

	value    T
	hasValue bool
	ticket   uint64
	closed   bool
}

// NewRendezvousChannel constructs an open rendezvous channel.
func NewRendezvousChannel[T any]() *RendezvousChannel[T] {
	c := &RendezvousChannel[T]{}
	c.slotFree = sync.NewCond(&c.mu)
	c.slotFilled = sync.NewCond(&c.mu)
	c.ticketAdvanced = sync.NewCond(&c.mu)
	return c
}

// Send deposits v and blocks until a receiver has observed it, returning a
// [*WriteToClosedError] if the channel was already closed, or became
// closed before any receiver arrived. It is the composition of
// sendWithoutWait and waitOnTicket; the [Channel] façade calls the two
// halves separately so it can notify Select subscribers between deposit
// and delivery.
func (c *RendezvousChannel[T]) Send(v T) error {
	ticket, err := c.sendWithoutWait(v)
	if err != nil {
		return err
	}
	return c.waitOnTicket(ticket)
}

// sendWithoutWait performs steps 1-3 of the send protocol: it waits for
// the slot to be free, deposits v, and returns the ticket assigned to
// this deposit. It never waits for delivery.
func (c *RendezvousChannel[T]) sendWithoutWait(v T) (uint64, error) {
	c.mu.Lock()
	for !c.closed {
		if !c.hasValue {
			c.value = v
			c.hasValue = true
			c.ticket++
			own := c.ticket
			c.mu.Unlock()
			c.slotFilled.Signal()
			return own, nil
		}
		c.slotFree.Wait()
	}
	c.mu.Unlock()
	return 0, &WriteToClosedError{Kind: "rendezvous"}
}

// waitOnTicket performs steps 4-5: it blocks until the deposit identified
// by ownTicket has been consumed (or the channel closes with it still
// undelivered), in which case it returns a [*WriteToClosedError].
func (c *RendezvousChannel[T]) waitOnTicket(ownTicket uint64) error {
	c.mu.Lock()
	for !c.closed && c.hasValue && c.ticket == ownTicket {
		c.ticketAdvanced.Wait()
	}
	undelivered := c.hasValue && c.ticket == ownTicket
	c.mu.Unlock()
	if undelivered {
		return &WriteToClosedError{Kind: "rendezvous"}
	}
	return nil
}

// Receive blocks until the slot holds a value, removes and returns it,
// and wakes one parked sender via both ticketAdvanced and slotFree. If
// the channel is closed with an empty slot, it returns (zero, false).
func (c *RendezvousChannel[T]) Receive() (T, bool) {
	c.mu.Lock()
	for !c.closed {
		if v, ok := c.tryReceiveLocked(); ok {
			c.mu.Unlock()
			c.ticketAdvanced.Signal()
			c.slotFree.Signal()
			return v, true
		}
		c.slotFilled.Wait()
	}
	v, ok := c.tryReceiveLocked()
	c.mu.Unlock()
	if ok {
		c.ticketAdvanced.Signal()
		c.slotFree.Signal()
	}
	return v, ok
}

// TryReceive removes the value from the slot if present, without
// blocking.
func (c *RendezvousChannel[T]) TryReceive() (T, bool) {
	c.mu.Lock()
	v, ok := c.tryReceiveLocked()
	c.mu.Unlock()
	if ok {
		c.ticketAdvanced.Signal()
		c.slotFree.Signal()
	}
	return v, ok
}

// tryReceiveLocked requires mu held by the caller and leaves it held;
// the caller unlocks and signals afterward so notification never happens
// while the channel's own mutex is still held.
func (c *RendezvousChannel[T]) tryReceiveLocked() (T, bool) {
	if !c.hasValue {
		var zero T
		return zero, false
	}
	v := c.value
	var zero T
	c.value = zero
	c.hasValue = false
	return v, true
}

// Close is idempotent. It marks the channel closed and broadcasts all
// three condition variables so that no parked sender or receiver remains
// blocked.
func (c *RendezvousChannel[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.slotFree.Broadcast()
	c.slotFilled.Broadcast()
	c.ticketAdvanced.Broadcast()
}

// IsLive reports true iff the channel is not both closed and empty.
func (c *RendezvousChannel[T]) IsLive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !(c.closed && !c.hasValue)
}
