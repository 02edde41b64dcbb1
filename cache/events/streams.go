// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-store decorator of the cache service.
package events

import (
	"context"

	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/events"
)

var _ cache.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc cache.Service
}

// NewEventStoreMiddleware returns a cache service decorator that publishes
// state-changing operations to the given event stream.
func NewEventStoreMiddleware(svc cache.Service, publisher events.Publisher) cache.Service {
	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}
}

func (es *eventStore) Store(ctx context.Context, value cache.Value) (string, error) {
	key, err := es.svc.Store(ctx, value)
	if err != nil {
		return key, err
	}

	event := storeEvent{
		key:  key,
		kind: value.Kind(),
	}
	if err := es.Publish(ctx, event); err != nil {
		return key, err
	}

	return key, nil
}

func (es *eventStore) Retrieve(ctx context.Context, key string, kind cache.Kind) (cache.Value, error) {
	return es.svc.Retrieve(ctx, key, kind)
}

func (es *eventStore) Remove(ctx context.Context, key string) error {
	if err := es.svc.Remove(ctx, key); err != nil {
		return err
	}

	return es.Publish(ctx, removeEvent{key: key})
}

func (es *eventStore) Reset(ctx context.Context) error {
	if err := es.svc.Reset(ctx); err != nil {
		return err
	}

	return es.Publish(ctx, resetEvent{})
}
