package pubsub

import (
	"context"
	"testing"

	"github.com/playpen/playpen/internal/resource"
	"github.com/stretchr/testify/assert"
)

type discard struct{}

func (discard) Debug(msg string, args ...any) {}
func (discard) Info(msg string, args ...any)  {}
func (discard) Warn(msg string, args ...any)  {}
func (discard) Error(msg string, args ...any) {}

func TestBroker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	broker := NewBroker[string](discard{})
	sub := broker.Subscribe(ctx)

	broker.Publish(resource.CreatedEvent, "a.js")
	broker.PublishEvent(resource.Event[string]{
		Type:     resource.UpdatedEvent,
		Payload:  "b.js",
		Previous: "a.js",
	})

	assert.Equal(t, resource.NewEvent(resource.CreatedEvent, "a.js"), <-sub)
	got := <-sub
	assert.Equal(t, "b.js", got.Payload)
	assert.Equal(t, "a.js", got.Previous)

	// Canceling the context closes the subscription.
	cancel()
	_, ok := <-sub
	assert.False(t, ok)
}
