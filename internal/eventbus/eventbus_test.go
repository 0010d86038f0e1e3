package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventCommentAdded, func(e DomainEvent) { got <- e })
	b.Subscribe(EventLoggedIn, func(DomainEvent) { t.Error("wrong event type delivered") })

	b.Publish(CommentAddedEvent{})

	select {
	case e := <-got:
		assert.Equal(t, EventCommentAdded, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)

	var first, second atomic.Int32
	unsub := b.Subscribe(EventLoggedOut, func(DomainEvent) { first.Add(1) })
	done := make(chan struct{}, 2)
	b.Subscribe(EventLoggedOut, func(DomainEvent) {
		second.Add(1)
		done <- struct{}{}
	})

	unsub()
	b.Publish(LoggedOutEvent{Username: "user"})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	b.Close()

	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "x"})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panicking handler blocked delivery")
	}
}

func TestCloseStopsDispatcher(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()

	require.NotPanics(t, func() { b.Publish(ErrorEvent{}) })
}
