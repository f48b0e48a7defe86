package events

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/cardstack/internal/types"
)

// DefaultBufferSize is the per-subscriber queue length
const DefaultBufferSize = 64

// ErrBusClosed is returned when publishing to or subscribing on a closed bus
var ErrBusClosed = errors.New("event bus closed")

// subscriber is one listener with its column filter.
// A zero filter receives every event.
type subscriber struct {
	ch       chan Event
	columnID types.ColumnID
}

// Bus fans events out to in-process subscribers.
// Slow subscribers lose events instead of blocking the publisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	closed      bool
	bufferSize  int

	sequence atomic.Int64
	dropped  atomic.Int64
}

// NewBus creates a bus whose subscribers buffer bufferSize events.
// bufferSize <= 0 uses DefaultBufferSize.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subscribers: make(map[*subscriber]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel receiving events for columnID (0 = all columns)
// and a cancel func that unsubscribes and closes the channel.
func (b *Bus) Subscribe(columnID types.ColumnID) (<-chan Event, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, nil, ErrBusClosed
	}

	sub := &subscriber{
		ch:       make(chan Event, b.bufferSize),
		columnID: columnID,
	}
	b.subscribers[sub] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.unsubscribe(sub) })
	}
	return sub.ch, cancel, nil
}

func (b *Bus) unsubscribe(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[sub]; !ok {
		return
	}
	delete(b.subscribers, sub)
	close(sub.ch)
}

// Publish stamps the event with a sequence id and delivers it to every
// matching subscriber without blocking
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for sub := range b.subscribers {
		if sub.columnID != 0 && !event.Touches(sub.columnID) {
			continue
		}

		// Non-blocking send - if subscriber is slow, skip
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
			slog.Warn("subscriber queue full, event dropped",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}

	return nil
}

// Dropped returns how many deliveries were skipped because a queue was full
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close unsubscribes everyone and rejects further publishes
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subscribers {
		delete(b.subscribers, sub)
		close(sub.ch)
	}
	return nil
}
