// Package broadcast implements the fan-out core of the messenger.
// A single mutex guards both the subscriber registry and the timestamp
// clock, so every publish (allocate timestamp + fan out) is atomic with
// respect to subscription changes. Nothing else happens under that lock:
// consumers dequeue outside of it.
package broadcast

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"messenger/domain"
)

type Broadcaster struct {
	mu    sync.Mutex
	clock *MonotonicClock
	subs  map[uuid.UUID]*Subscription
	order []uuid.UUID // enumeration order for fan-out: registration order
	log   *slog.Logger
}

func NewBroadcaster(log *slog.Logger) *Broadcaster {
	return &Broadcaster{
		clock: NewMonotonicClock(),
		subs:  make(map[uuid.UUID]*Subscription),
		log:   log,
	}
}

// Publish allocates a timestamp, builds the message and appends a copy of
// it to every registered backlog, all as one atomic unit. Fan-out never
// blocks: queues are unbounded and consumers wait outside the lock.
// Returns the assigned send time.
func (b *Broadcaster) Publish(author, text string) time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()

	sendTime := b.clock.Next()
	msg := domain.ChatMessage{Author: author, Text: text, SendTime: sendTime}
	for _, id := range b.order {
		// ChatMessage is a value: each backlog holds its own copy, so one
		// subscriber's consumption pace cannot affect another's data.
		b.subs[id].push(msg)
	}
	return sendTime
}

// Subscribe registers a new subscription atomically with respect to any
// concurrent Publish: a message racing the registration is either fully
// visible to the new subscription or not published yet. There is no replay
// of anything published before registration completed.
func (b *Broadcaster) Subscribe() *Subscription {
	sub := newSubscription()

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.order = append(b.order, sub.id)
	total := len(b.subs)
	b.mu.Unlock()

	b.log.Debug(fmt.Sprintf("Subscription %s registered (%d active)", sub.id, total))
	return sub
}

// Unsubscribe removes a subscription from the registry. Removing an
// already-removed subscription is an idempotent no-op; it never blocks or
// fails a concurrent Publish.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if _, ok := b.subs[sub.id]; !ok {
		b.mu.Unlock()
		return
	}
	delete(b.subs, sub.id)
	b.order = lo.Reject(b.order, func(id uuid.UUID, _ int) bool {
		return id == sub.id
	})
	total := len(b.subs)
	b.mu.Unlock()

	b.log.Debug(fmt.Sprintf("Subscription %s removed (%d active)", sub.id, total))
}

// Subscribers reports the number of registered subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
