// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-sourcing abstraction used to publish
// cache state changes to an event stream.
package events

import (
	"context"
	"time"
)

const (
	// UnpublishedEventsCheckInterval is how often the publisher retries
	// events buffered while the stream was unreachable.
	UnpublishedEventsCheckInterval = 1 * time.Minute

	// ConnCheckInterval bounds the connection probe before publishing.
	ConnCheckInterval = 100 * time.Millisecond

	// MaxUnpublishedEvents is the capacity of the offline event buffer.
	MaxUnpublishedEvents uint64 = 1e4

	// MaxEventStreamLen is the approximate maximum stream length.
	MaxEventStreamLen int64 = 1e6
)

// Event represents an event.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]interface{}, error)
}

// Publisher specifies events publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}
