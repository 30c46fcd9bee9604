package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Topics covered by the broker. Publishing a topic tells every listener that
// the matching collection changed; listeners re-run their query and push the
// full result set, so a delivery is always a complete snapshot, not a delta.
const (
	TopicProfiles     = "profiles"
	TopicAppointments = "appointments"
	TopicMessages     = "messages"
)

// Broker fans change notifications out to per-topic listeners.
type Broker struct {
	mu     sync.Mutex
	nextID int64
	topics map[string]map[int64]chan struct{}
}

func NewBroker() *Broker {
	return &Broker{
		topics: make(map[string]map[int64]chan struct{}),
	}
}

// Publish notifies every listener on the topic. The per-listener channel has
// a buffer of one, so pending notifications coalesce instead of piling up
// behind a slow consumer.
func (b *Broker) Publish(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, notify := range b.topics[topic] {
		select {
		case notify <- struct{}{}:
		default: // a refresh is already pending
		}
	}
}

func (b *Broker) register(topic string) (int64, chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[int64]chan struct{})
	}
	notify := make(chan struct{}, 1)
	b.topics[topic][id] = notify
	return id, notify
}

func (b *Broker) unregister(topic string, id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.topics[topic]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
}

// Query produces the current result set for a subscription.
type Query[T any] func(ctx context.Context) (T, error)

// Subscription is a live view over a query. Updates delivers the initial
// snapshot and a fresh one after every publish on the topic. Close must be
// called when the consumer goes away; a dangling subscription keeps a
// goroutine and a broker slot alive.
type Subscription[T any] struct {
	updates chan T
	cancel  context.CancelFunc
	once    sync.Once
}

// Updates is the snapshot stream. It is closed after Close or when the
// subscription context ends.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Close tears the subscription down. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
}

// Subscribe attaches a live query to a topic. Refresh failures are logged and
// skipped; the subscription stays alive and retries on the next publish.
func Subscribe[T any](ctx context.Context, b *Broker, logger *zap.Logger, topic string, query Query[T]) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)

	sub := &Subscription[T]{
		updates: make(chan T, 1),
		cancel:  cancel,
	}

	id, notify := b.register(topic)

	go func() {
		defer close(sub.updates)
		defer b.unregister(topic, id)

		// Initial snapshot
		if snapshot, err := query(ctx); err == nil {
			sub.push(snapshot)
		} else if ctx.Err() == nil {
			logger.Error("Initial snapshot failed",
				zap.String("topic", topic),
				zap.Error(err),
			)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-notify:
				snapshot, err := query(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logger.Error("Snapshot refresh failed",
						zap.String("topic", topic),
						zap.Error(err),
					)
					continue
				}
				sub.push(snapshot)
			}
		}
	}()

	return sub
}

// push replaces any undelivered snapshot with the latest one.
func (s *Subscription[T]) push(snapshot T) {
	for {
		select {
		case s.updates <- snapshot:
			return
		default:
			select {
			case <-s.updates: // drop the stale snapshot
			default:
			}
		}
	}
}
