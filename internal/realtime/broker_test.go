package realtime

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recv(t *testing.T, updates <-chan int) int {
	t.Helper()
	select {
	case v, ok := <-updates:
		require.True(t, ok, "subscription closed unexpectedly")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		panic("unreachable")
	}
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Subscribe(ctx, broker, zap.NewNop(), TopicAppointments, func(context.Context) (int, error) {
		return 42, nil
	})
	defer sub.Close()

	assert.Equal(t, 42, recv(t, sub.Updates()))
}

func TestPublishTriggersRefresh(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	sub := Subscribe(ctx, broker, zap.NewNop(), TopicMessages, func(context.Context) (int64, error) {
		return counter.Add(1), nil
	})
	defer sub.Close()

	first := recv64(t, sub.Updates())
	broker.Publish(TopicMessages)
	second := recv64(t, sub.Updates())

	assert.Greater(t, second, first)
}

func recv64(t *testing.T, updates <-chan int64) int64 {
	t.Helper()
	select {
	case v, ok := <-updates:
		require.True(t, ok, "subscription closed unexpectedly")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		panic("unreachable")
	}
}

func TestPublishOnOtherTopicIsIgnored(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Subscribe(ctx, broker, zap.NewNop(), TopicMessages, func(context.Context) (int, error) {
		return 1, nil
	})
	defer sub.Close()

	recv(t, sub.Updates()) // initial snapshot
	broker.Publish(TopicProfiles)

	select {
	case v, ok := <-sub.Updates():
		if ok {
			t.Fatalf("unexpected snapshot %v for a foreign topic", v)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	broker := NewBroker()

	sub := Subscribe(context.Background(), broker, zap.NewNop(), TopicAppointments, func(context.Context) (int, error) {
		return 7, nil
	})

	recv(t, sub.Updates())
	sub.Close()

	// The updates channel drains and closes; publishing afterwards must not
	// revive it.
	broker.Publish(TopicAppointments)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("updates channel never closed after Close")
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	broker := NewBroker()

	sub := Subscribe(context.Background(), broker, zap.NewNop(), TopicAppointments, func(context.Context) (int, error) {
		return 7, nil
	})

	sub.Close()
	sub.Close()
}

func TestSlowConsumerCoalesces(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	sub := Subscribe(ctx, broker, zap.NewNop(), TopicMessages, func(context.Context) (int64, error) {
		return counter.Add(1), nil
	})
	defer sub.Close()

	recv64(t, sub.Updates())

	// Burst of publishes while the consumer sleeps: deliveries coalesce to
	// the most recent snapshot instead of queueing.
	for i := 0; i < 5; i++ {
		broker.Publish(TopicMessages)
		time.Sleep(10 * time.Millisecond)
	}

	last := recv64(t, sub.Updates())
	assert.LessOrEqual(t, last, counter.Load())
}
