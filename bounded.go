package tchan

import "sync"

// BoundedChannel is a channel backed by a [RingBuffer] of capacity >= 1.
// All mutation of the buffer and the closed flag happens under mu; notFull
// and notEmpty wake senders and receivers respectively. Closing a bounded
// channel never discards values already buffered — it only stops further
// sends from succeeding.
type BoundedChannel[T any] struct {
	mu      sync.Mutex
	notFull *sync.Cond
	// notEmpty wakes receivers blocked in Receive when either a value
	// becomes available or the channel closes.
	notEmpty *sync.Cond
	buf      *RingBuffer[T]
	closed   bool
}

// NewBoundedChannel constructs an open bounded channel with the given
// capacity. Panics if capacity is not positive; use [NewRendezvousChannel]
// for capacity 0.
func NewBoundedChannel[T any](capacity int) *BoundedChannel[T] {
	c := &BoundedChannel[T]{buf: NewRingBuffer[T](capacity)}
	c.notFull = sync.NewCond(&c.mu)
	c.notEmpty = sync.NewCond(&c.mu)
	return c
}

// Send blocks until the buffer has room and v is appended, or the channel
// is observed closed, in which case it returns a [*WriteToClosedError].
// Among waiting senders, notFull wakes one waiter at a time; this provides
// no fairness guarantee beyond sync.Cond's own.
func (c *BoundedChannel[T]) Send(v T) error {
	c.mu.Lock()
	for !c.closed {
		if !c.buf.Full() {
			c.buf.Push(v)
			c.mu.Unlock()
			c.notEmpty.Signal()
			return nil
		}
		c.notFull.Wait()
	}
	c.mu.Unlock()
	return &WriteToClosedError{Kind: "bounded"}
}

// TrySend appends v and reports true iff the channel is open and the
// buffer is not full. It never blocks and never fails with an error.
func (c *BoundedChannel[T]) TrySend(v T) bool {
	c.mu.Lock()
	if c.closed || c.buf.Full() {
		c.mu.Unlock()
		return false
	}
	c.buf.Push(v)
	c.mu.Unlock()
	c.notEmpty.Signal()
	return true
}

// Receive blocks until a value is available, in which case it removes and
// returns it and wakes one sender, or the channel is closed and drained,
// in which case it returns (zero, false). A closed-but-non-empty channel
// still drains in FIFO order before Receive reports absent.
func (c *BoundedChannel[T]) Receive() (T, bool) {
	c.mu.Lock()
	for !c.closed {
		if v, ok := c.tryReceiveLocked(); ok {
			c.mu.Unlock()
			c.notFull.Signal()
			return v, true
		}
		c.notEmpty.Wait()
	}
	v, ok := c.tryReceiveLocked()
	c.mu.Unlock()
	if ok {
		c.notFull.Signal()
	}
	return v, ok
}

// TryReceive returns the head value if present, without regard to the
// closed state, and never blocks.
func (c *BoundedChannel[T]) TryReceive() (T, bool) {
	c.mu.Lock()
	v, ok := c.tryReceiveLocked()
	c.mu.Unlock()
	if ok {
		c.notFull.Signal()
	}
	return v, ok
}

func (c *BoundedChannel[T]) tryReceiveLocked() (T, bool) {
	return c.buf.TryPop()
}

// Close is idempotent. It marks the channel closed and wakes every blocked
// sender and receiver; any value already buffered remains readable.
func (c *BoundedChannel[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.notFull.Broadcast()
	c.notEmpty.Broadcast()
}

// IsLive reports true iff the channel is not both closed and empty.
// Intended for external polling, e.g. [Select]'s open-channel probe.
func (c *BoundedChannel[T]) IsLive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !(c.closed && c.buf.Empty())
}
