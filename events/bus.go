// Package events carries pointer clicks from a presentation surface to the
// components mounted on it.
package events

import (
	"sync"

	"github.com/rohanthewiz/logger"
)

// Click is one pointer click. Path holds the element ids from the click
// target outward to the document root, the way a browser's composedPath does.
type Click struct {
	Path []string `json:"path" msgpack:"path"`
}

// Within reports whether the click landed on the element id or inside it.
func (c Click) Within(id string) bool {
	if id == "" {
		return false
	}
	for _, p := range c.Path {
		if p == id {
			return true
		}
	}
	return false
}

// ClickHandler receives clicks from a ClickSource.
type ClickHandler func(Click)

// ClickSource lets a component listen for every click on its surface.
// The returned func removes the listener; calling it more than once is harmless.
type ClickSource interface {
	SubscribeClicks(h ClickHandler) (unsubscribe func())
}

// Bus is a synchronous ClickSource. PublishClick runs every listener to
// completion, in subscription order, before returning.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	order    []int
	handlers map[int]ClickHandler
}

// NewBus creates an empty click bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]ClickHandler)}
}

// SubscribeClicks registers h and returns its unsubscribe func
func (b *Bus) SubscribeClicks(h ClickHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// PublishClick delivers c to every current listener.
func (b *Bus) PublishClick(c Click) {
	// Copy so handlers can unsubscribe while being called
	b.mu.Lock()
	handlers := make([]ClickHandler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	logger.Debug("Publishing click", "path", c.Path, "listeners", len(handlers))
	for _, h := range handlers {
		h(c)
	}
}

// Listeners returns the number of subscribed handlers.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}
