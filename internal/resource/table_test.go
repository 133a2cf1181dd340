package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher[T any] struct {
	events []EventType
}

func (f *fakePublisher[T]) Publish(t EventType, _ T) {
	f.events = append(f.events, t)
}

func TestTable(t *testing.T) {
	pub := &fakePublisher[string]{}
	table := NewTable[string](pub)

	id := NewID(Log)
	table.Add(id, "hello")

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, []string{"hello"}, table.List())

	table.Delete(id)
	_, err = table.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing row emits nothing
	table.Delete(id)

	assert.Equal(t, []EventType{CreatedEvent, DeletedEvent}, pub.events)
}
