package tchan

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannelSelectsVariantByCapacity(t *testing.T) {
	bounded := NewChannel[int](2)
	assert.Equal(t, kindBounded, bounded.k)
	assert.NotNil(t, bounded.bounded)
	assert.Nil(t, bounded.rendez)

	rendez := NewChannel[int](0)
	assert.Equal(t, kindRendezvous, rendez.k)
	assert.NotNil(t, rendez.rendez)
	assert.Nil(t, rendez.bounded)
}

func TestChannelBoundedSendReceive(t *testing.T) {
	ch := NewChannel[int](3)
	for i := 0; i < 3; i++ {
		require.NoError(t, ch.Send(i))
	}
	ch.Close()

	var got []int
	for {
		v, ok := ch.Receive()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestChannelRendezvousSendReceive(t *testing.T) {
	ch := NewChannel[string](0)

	go func() {
		if err := ch.Send("a"); err != nil {
			t.Errorf("unexpected send failure: %v", err)
		}
		ch.Close()
	}()

	v, ok := ch.Receive()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = ch.Receive()
	assert.False(t, ok)
}

func TestChannelTrySendRendezvousAlwaysFalse(t *testing.T) {
	ch := NewChannel[int](0)
	assert.False(t, ch.TrySend(1))
}

func TestChannelTrySendBounded(t *testing.T) {
	ch := NewChannel[int](1)
	assert.True(t, ch.TrySend(1))
	assert.False(t, ch.TrySend(2))
}

func TestChannelMustReceivePanicsOnAbsent(t *testing.T) {
	ch := NewChannel[int](1)
	ch.Close()

	assert.PanicsWithValue(t, &ReadOfAbsentError{}, func() {
		ch.MustReceive()
	})
}

func TestChannelMustReceiveReturnsValue(t *testing.T) {
	ch := NewChannel[int](1)
	require.NoError(t, ch.Send(9))
	assert.Equal(t, 9, ch.MustReceive())
}

func TestChannelSendChainPanicsOnClosed(t *testing.T) {
	ch := NewChannel[int](1)
	ch.Close()

	assert.Panics(t, func() {
		ch.SendChain(1)
	})
}

func TestChannelSendChainReturnsSelf(t *testing.T) {
	ch := NewChannel[int](2)
	got := ch.SendChain(1).SendChain(2)
	assert.Same(t, ch, got)

	v, _ := ch.Receive()
	assert.Equal(t, 1, v)
	v, _ = ch.Receive()
	assert.Equal(t, 2, v)
}

func TestChannelCloseRejectsSendWithErrorIs(t *testing.T) {
	ch := NewChannel[int](1)
	ch.Close()

	err := ch.Send(1)
	assert.True(t, errors.Is(err, ErrWriteToClosed))
}

// Subscribers registered before a bounded send are notified after the
// value becomes readable; notifySubscribers runs with the subscriber
// mutex only, never the channel's own lock.
func TestChannelSubscribeNotifiedOnBoundedSend(t *testing.T) {
	ch := NewChannel[int](2)
	notify := NewBoundedChannel[int](1)
	ch.subscribe(notify, 7)

	require.NoError(t, ch.Send(1))

	select {
	case tag, ok := <-chanFromBoundedReceive(notify):
		require.True(t, ok)
		assert.Equal(t, 7, tag)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not notified")
	}
}

// Subscribers are cleared after every successful delivery: a second send
// with no re-subscription notifies nobody.
func TestChannelSubscribersClearedAfterDelivery(t *testing.T) {
	ch := NewChannel[int](2)
	notify := NewBoundedChannel[int](2)
	ch.subscribe(notify, 1)

	require.NoError(t, ch.Send(1))
	_, ok := notify.TryReceive()
	require.True(t, ok)

	require.NoError(t, ch.Send(2))
	_, ok = notify.TryReceive()
	assert.False(t, ok, "stale subscription must not fire again")
}

// chanFromBoundedReceive adapts a BoundedChannel's blocking Receive into a
// native Go channel so it can be combined with select/time.After in
// tests without reaching into the package's internal condition variables.
func chanFromBoundedReceive(bc *BoundedChannel[int]) <-chan int {
	out := make(chan int, 1)
	go func() {
		v, ok := bc.Receive()
		if ok {
			out <- v
		}
		close(out)
	}()
	return out
}
