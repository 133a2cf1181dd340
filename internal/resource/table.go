package resource

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
)

// Publisher publishes events describing changes to a T.
type Publisher[T any] interface {
	Publish(EventType, T)
}

// Table is an in-memory database table that emits events upon changes.
type Table[T any] struct {
	rows map[ID]T
	mu   sync.RWMutex

	pub Publisher[T]
}

func NewTable[T any](pub Publisher[T]) *Table[T] {
	return &Table[T]{
		rows: make(map[ID]T),
		pub:  pub,
	}
}

func (t *Table[T]) Add(id ID, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[id] = row
	t.pub.Publish(CreatedEvent, row)
}

func (t *Table[T]) Delete(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return
	}
	delete(t.rows, id)
	t.pub.Publish(DeletedEvent, row)
}

func (t *Table[T]) Get(id ID) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return *new(T), fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return row, nil
}

// List returns all rows in no particular order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return maps.Values(t.rows)
}
