// Package alert carries free-text operator alerts from the jobs to every registered listener.
package alert

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	evbus "github.com/asaskevich/EventBus"
)

const topic = "alert:message"

// Handler receives every message published after it subscribed.
type Handler func(message string)

// Bus is a process-wide publish/subscribe channel. Handlers run synchronously on Publish,
// in subscription order.
type Bus struct {
	bus evbus.Bus

	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler
}

func NewBus() (*Bus, error) {
	b := &Bus{
		bus:      evbus.New(),
		handlers: make(map[uint64]Handler),
	}
	// Handlers are kept here rather than subscribed to evbus directly: evbus unsubscribes by
	// code pointer, so two closures of the same literal cannot be removed independently.
	// evbus only ever sees this one dispatcher.
	if err := b.bus.Subscribe(topic, b.dispatch); err != nil {
		return nil, fmt.Errorf("subscribe dispatcher: %w", err)
	}
	return b, nil
}

// Publish delivers message to every current subscriber.
func (b *Bus) Publish(message string) {
	b.bus.Publish(topic, message)
}

// Subscribe registers handler until the returned function is called.
func (b *Bus) Subscribe(handler Handler) (unsubscribe func(), err error) {
	if handler == nil {
		return nil, errors.New("alert handler is required")
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}, nil
}

// Subscribers returns the number of registered handlers.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func (b *Bus) dispatch(message string) {
	b.mu.RLock()
	ids := make([]uint64, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(message)
	}
}
