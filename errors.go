package tchan

import "errors"

// ErrWriteToClosed is the sentinel a caller can compare against with
// [errors.Is]. Every error returned by a [Channel.Send] (or by the lower
// level [BoundedChannel.Send] / [RendezvousChannel.Send]) unwraps to this.
var ErrWriteToClosed = errors.New("tchan: write to closed channel")

// ErrReadOfAbsent is the sentinel [errors.Is] target for [Channel.MustReceive]
// when the underlying receive returned no value.
var ErrReadOfAbsent = errors.New("tchan: read of absent value")

// WriteToClosedError reports that a send failed because the channel was
// already closed, or — for a rendezvous channel — became closed before a
// receiver took the value.
type WriteToClosedError struct {
	// Kind names the channel variant that rejected the send ("bounded" or
	// "rendezvous"), useful when logging a failure from generic code that
	// doesn't otherwise know which variant it holds.
	Kind string
}

func (e *WriteToClosedError) Error() string {
	return "tchan: write to closed " + e.Kind + " channel"
}

func (e *WriteToClosedError) Unwrap() error { return ErrWriteToClosed }

// ReadOfAbsentError reports that a mandatory-value read found no value to
// extract. The core receive operations never raise this themselves — they
// return an "absent" result — it exists only for sugar methods such as
// [Channel.MustReceive] that compose a receive with a non-optional sink.
type ReadOfAbsentError struct{}

func (e *ReadOfAbsentError) Error() string { return "tchan: read of absent value" }

func (e *ReadOfAbsentError) Unwrap() error { return ErrReadOfAbsent }
