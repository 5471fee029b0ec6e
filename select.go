package tchan

// caseDispatcher is the type-erased shape [Select] operates on. Go's
// generics can't hold a heterogeneous tuple of Case[T] for distinct T the
// way the original's variadic template does, so each Case[T] implements
// this interface instead and Select takes a slice of it.
type caseDispatcher interface {
	live() bool
	subscribeTo(notify *BoundedChannel[int], tag int)
	tryDispatch() bool
}

// Case binds a channel to a handler for its element type. Construct one
// with [On].
type Case[T any] struct {
	ch      *Channel[T]
	handler func(T)
}

// On builds a [Select] case: when ch becomes readable, handler is invoked
// with the received value. Panics if ch or handler is nil.
func On[T any](ch *Channel[T], handler func(T)) Case[T] {
	if ch == nil {
		panic("tchan: On requires a non-nil channel")
	}
	if handler == nil {
		panic("tchan: On requires a non-nil handler")
	}
	return Case[T]{ch: ch, handler: handler}
}

func (c Case[T]) live() bool { return c.ch.IsLive() }

func (c Case[T]) subscribeTo(notify *BoundedChannel[int], tag int) {
	c.ch.subscribe(notify, tag)
}

func (c Case[T]) tryDispatch() bool {
	v, ok := c.ch.TryReceive()
	if !ok {
		return false
	}
	c.handler(v)
	return true
}

// Select waits on several channels at once and dispatches to the handler
// of the first one that becomes readable, invoking at most one handler
// per call. If two cases are both ready when polled, the lower
// declaration-index case wins — declaration order, not notification
// order. Select returns without dispatching when every case's channel is
// non-live at the time it checks: on entry, or after a wake-up from the
// notification channel. Only a send notifies subscribers, so a call that
// is already waiting is not woken when its channels are merely closed.
//
// Panics if called with zero cases.
func Select(cases ...caseDispatcher) {
	if len(cases) == 0 {
		panic("tchan: Select requires at least one case")
	}

	// Capacity k: one notification slot per case is always enough,
	// because notifySubscribers clears the whole subscriber list on
	// every successful delivery, so a channel holds at most one live
	// subscription from this Select call at a time.
	notify := NewBoundedChannel[int](len(cases))

	for i, c := range cases {
		if c.live() {
			c.subscribeTo(notify, i)
		}
	}

	dispatchOnce := func() bool {
		for _, c := range cases {
			if c.tryDispatch() {
				return true
			}
		}
		return false
	}

	anyLive := func() bool {
		for _, c := range cases {
			if c.live() {
				return true
			}
		}
		return false
	}

	if dispatchOnce() {
		return
	}

	for anyLive() {
		// A received index is only ever a hint: a concurrent consumer
		// may have already taken the value it names, so every wake-up
		// re-polls from case 0 rather than trusting the index. Spurious
		// wake-ups are tolerated the same way:
		// a fruitless poll just sends the loop back around.
		if _, ok := notify.Receive(); !ok {
			continue
		}
		if dispatchOnce() {
			return
		}
	}
}
