package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"outlaw/models"

	"github.com/stretchr/testify/assert"
)

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var received []Event
	done := make(chan struct{})

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		close(done)
	})

	bus.Emit(context.Background(), BalanceChangeEvent{
		UserID:          1,
		TransactionType: models.TransactionTypeDaily,
		Amount:          100,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 1)
	change := received[0].(BalanceChangeEvent)
	assert.Equal(t, int64(1), change.UserID)
}

func TestBus_EmitIgnoresOtherTypes(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeNotification, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(context.Background(), BalanceChangeEvent{UserID: 1})

	select {
	case <-called:
		t.Fatal("handler called for the wrong event type")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTransactionalBus_FlushAfterCommit(t *testing.T) {
	real := NewBus()

	var mu sync.Mutex
	var received []Event
	done := make(chan struct{})

	real.Subscribe(EventTypeNotification, func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		close(done)
	})

	txBus := NewTransactionalBus(real)
	txBus.Publish(NotificationEvent{RecipientID: 1, Message: "hello"})

	// nothing delivered before the flush
	mu.Lock()
	assert.Empty(t, received)
	mu.Unlock()

	txBus.Flush()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not flushed")
	}
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	real := NewBus()

	called := make(chan struct{}, 1)
	real.Subscribe(EventTypeNotification, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	txBus := NewTransactionalBus(real)
	txBus.Publish(NotificationEvent{RecipientID: 1, Message: "dropped"})
	txBus.Discard()
	txBus.Flush()

	select {
	case <-called:
		t.Fatal("discarded event was delivered")
	case <-time.After(50 * time.Millisecond):
	}
}
