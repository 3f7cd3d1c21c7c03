package cache

import (
	"reflect"
	"sync"

	"freightops/internal/core/ports"
)

// Event is delivered to collection subscribers after a change is applied.
type Event[T any] struct {
	Kind  ports.ChangeKind
	ID    string
	Value T
}

// Collection is a concurrency-safe, primary-key-indexed set of read models.
// All mutation goes through Apply and Reset, the same path for feed events
// and command echoes, so merge semantics live in exactly one place.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	nextSub int
	subs    map[int]chan Event[T]
}

// NewCollection creates an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
		subs:  make(map[int]chan Event[T]),
	}
}

// Apply merges one change into the collection. Inserts and updates are both
// a last-write-wins overwrite keyed by primary key; deletes remove the key.
// Applying the same event twice converges to the same state.
func (c *Collection[T]) Apply(kind ports.ChangeKind, id string, value T) {
	c.mu.Lock()
	switch kind {
	case ports.ChangeInsert, ports.ChangeUpdate:
		c.items[id] = value
	case ports.ChangeDelete:
		delete(c.items, id)
	}
	c.mu.Unlock()

	c.notify(Event[T]{Kind: kind, ID: id, Value: value})
}

// Reset replaces the whole collection with a snapshot. Used after a feed
// resubscription, when events may have been missed. Subscribers are notified
// of every key the snapshot added, changed, or removed, so a change that
// arrived only via the re-seed still reaches them; unchanged keys stay silent.
func (c *Collection[T]) Reset(snapshot map[string]T) {
	c.mu.Lock()
	var events []Event[T]
	for id, v := range snapshot {
		old, ok := c.items[id]
		switch {
		case !ok:
			events = append(events, Event[T]{Kind: ports.ChangeInsert, ID: id, Value: v})
		case !reflect.DeepEqual(old, v):
			events = append(events, Event[T]{Kind: ports.ChangeUpdate, ID: id, Value: v})
		}
	}
	for id := range c.items {
		if _, ok := snapshot[id]; !ok {
			events = append(events, Event[T]{Kind: ports.ChangeDelete, ID: id})
		}
	}

	c.items = make(map[string]T, len(snapshot))
	for id, v := range snapshot {
		c.items[id] = v
	}
	c.mu.Unlock()

	for _, ev := range events {
		c.notify(ev)
	}
}

// Get returns the item stored under the given primary key.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// List returns a copy of every item in the collection.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, v)
	}
	return out
}

// Len returns the number of items in the collection.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Subscribe registers a listener for applied changes. The returned cancel
// function unregisters it and closes the channel. Events are dropped for
// subscribers that fall behind their buffer; the cache itself never blocks.
func (c *Collection[T]) Subscribe(buffer int) (<-chan Event[T], func()) {
	ch := make(chan Event[T], buffer)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
		c.mu.Unlock()
	}
	return ch, cancel
}

func (c *Collection[T]) notify(ev Event[T]) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, sub := range c.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
