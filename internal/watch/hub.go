// Package watch fans out collection snapshots to live subscribers. Every
// successful write to a collection publishes the entire current snapshot;
// subscribers (SSE streams, mostly) re-render from whole snapshots rather
// than applying deltas, which is what keeps the consumers trivial.
package watch

import (
	"context"
	"sync"
)

// Hub is a per-collection broadcast channel of snapshots.
//
// Delivery is drop-to-latest: a subscriber that has not consumed the previous
// snapshot when a new one arrives sees only the new one. Writers never block
// on slow subscribers.
//
// A write published through the hub is always observed by subscriptions held
// by the same process, including the writer's own (local echo).
type Hub[T any] struct {
	mu     sync.Mutex
	subs   map[int]chan []T
	nextID int
	last   []T
	primed bool
}

// NewHub returns an empty hub with no subscribers.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[int]chan []T)}
}

// Publish replaces the current snapshot and delivers it to every subscriber.
func (h *Hub[T]) Publish(snapshot []T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = snapshot
	h.primed = true
	for _, ch := range h.subs {
		deliver(ch, snapshot)
	}
}

// Subscribe registers a new subscriber and returns its snapshot channel plus
// a detach func. The detach func must be called on teardown — an undetached
// subscriber keeps receiving updates forever. Detaching is also triggered by
// ctx cancellation, so HTTP streams get cleaned up when the client goes away.
//
// If a snapshot has ever been published, it is delivered immediately so new
// subscribers do not render an empty list while waiting for the next write.
func (h *Hub[T]) Subscribe(ctx context.Context) (<-chan []T, func()) {
	ch := make(chan []T, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	if h.primed {
		deliver(ch, h.last)
	}
	h.mu.Unlock()

	var once sync.Once
	detach := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}

	go func() {
		<-ctx.Done()
		detach()
	}()

	return ch, detach
}

// Len returns the number of active subscribers.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// deliver puts snapshot on ch, displacing an unconsumed older snapshot.
// ch has capacity 1, so after at most one eviction the send succeeds.
func deliver[T any](ch chan []T, snapshot []T) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
