package broadcast

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"messenger/domain"
)

// Subscription is one subscriber's live session: an identity and an
// unbounded FIFO backlog of messages awaiting delivery.
//
// The backlog has a single producer (the Broadcaster, under its lock) and a
// single consumer (the stream handler that owns this Subscription). A slow
// consumer grows its own backlog; it never blocks the producer or any other
// subscriber.
type Subscription struct {
	id uuid.UUID

	mu      sync.Mutex
	backlog []domain.ChatMessage
	wake    chan struct{}
}

func newSubscription() *Subscription {
	return &Subscription{
		id:   uuid.New(),
		wake: make(chan struct{}, 1),
	}
}

func (s *Subscription) ID() uuid.UUID { return s.id }

// push appends a message to the backlog and signals the consumer.
// It never blocks, whatever the consumer is doing.
func (s *Subscription) push(msg domain.ChatMessage) {
	s.mu.Lock()
	s.backlog = append(s.backlog, msg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
		// Consumer already has a pending wake-up; it will drain the backlog.
	}
}

// Next blocks until a message is available or ctx is cancelled.
// Cancellation is the transport telling us the subscriber is gone.
func (s *Subscription) Next(ctx context.Context) (domain.ChatMessage, error) {
	for {
		s.mu.Lock()
		if len(s.backlog) > 0 {
			msg := s.backlog[0]
			s.backlog = s.backlog[1:]
			s.mu.Unlock()
			return msg, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.ChatMessage{}, ctx.Err()
		case <-s.wake:
		}
	}
}

// Pending reports how many messages are queued and not yet consumed.
func (s *Subscription) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.backlog)
}
