package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

var (
	eventsMu sync.RWMutex
	events   = map[string]string{}
)

// Event[T] ties a topic name to its payload type.
type Event[T any] struct {
	topicName string
}

// NewEvent defines a typed event and records it in the package topic list.
// Defining the same topic twice is a programming error and panics.
func NewEvent[T any](name string, description string) Event[T] {
	eventsMu.Lock()
	defer eventsMu.Unlock()
	if _, exists := events[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q defined twice", name))
	}
	events[name] = description
	return Event[T]{topicName: name}
}

// Topics lists every defined event topic in name order.
func Topics() []string {
	eventsMu.RLock()
	defer eventsMu.RUnlock()
	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description a topic was defined with.
func Describe(name string) string {
	eventsMu.RLock()
	defer eventsMu.RUnlock()
	return events[name]
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Decode unmarshals the payload of a message received on this event's topic.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", e.topicName, err)
	}
	return payload, nil
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		UserID:  userID,
		Payload: data,
	})
}
