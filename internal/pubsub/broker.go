package pubsub

import (
	"context"
	"sync"

	"github.com/playpen/playpen/internal/resource"
)

const (
	// subBufferSize is the buffer size of the channel for each subscription.
	subBufferSize = 1024
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker allows clients to publish events and subscribe to events
type Broker[T any] struct {
	subs map[chan resource.Event[T]]struct{} // subscriptions
	mu   sync.Mutex                          // sync access to map

	logger Logger
}

func NewBroker[T any](logger Logger) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan resource.Event[T]]struct{}),
		logger: logger,
	}
}

// Subscribe subscribes the caller to a stream of events. The subscription is
// closed when the context is canceled.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan resource.Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan resource.Event[T], subBufferSize)
	b.subs[sub] = struct{}{}

	// when the context is canceled remove the subscriber
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish an event to subscribers.
func (b *Broker[T]) Publish(t resource.EventType, payload T) {
	b.PublishEvent(resource.Event[T]{Type: t, Payload: payload})
}

// PublishEvent publishes a fully formed event to subscribers. Subscribers
// whose buffer is full are unsubscribed.
func (b *Broker[T]) PublishEvent(ev resource.Event[T]) {
	var fullSubscribers []chan resource.Event[T]

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- ev:
			continue
		default:
			fullSubscribers = append(fullSubscribers, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range fullSubscribers {
		b.logger.Error("unsubscribing full subscriber", "sub", sub, "queue_length", subBufferSize)
		b.unsubscribe(sub)
	}
}

func (b *Broker[T]) unsubscribe(sub chan resource.Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
