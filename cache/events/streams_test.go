// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package events_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/cache/events"
	"github.com/stashkv/stash/cache/mocks"
	evmocks "github.com/stashkv/stash/pkg/events/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorePublishesEvent(t *testing.T) {
	svc := new(mocks.Service)
	publisher := new(evmocks.Publisher)
	es := events.NewEventStoreMiddleware(svc, publisher)

	svc.On("Store", context.Background(), mock.Anything).Return("key", nil)
	pubCall := publisher.On("Publish", context.Background(), mock.Anything).Return(nil)

	key, err := es.Store(context.Background(), cache.StringValue("hello"))
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	assert.Equal(t, "key", key, fmt.Sprintf("expected key got %s\n", key))
	publisher.AssertNumberOfCalls(t, "Publish", 1)
	pubCall.Unset()
}

func TestRetrieveDoesNotPublish(t *testing.T) {
	svc := new(mocks.Service)
	publisher := new(evmocks.Publisher)
	es := events.NewEventStoreMiddleware(svc, publisher)

	svc.On("Retrieve", context.Background(), "key", cache.String).Return(cache.StringValue("hello"), nil)

	_, err := es.Retrieve(context.Background(), "key", cache.String)
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	publisher.AssertNumberOfCalls(t, "Publish", 0)
}

func TestRemovePublishesEvent(t *testing.T) {
	svc := new(mocks.Service)
	publisher := new(evmocks.Publisher)
	es := events.NewEventStoreMiddleware(svc, publisher)

	svc.On("Remove", context.Background(), "key").Return(nil)
	publisher.On("Publish", context.Background(), mock.Anything).Return(nil)

	err := es.Remove(context.Background(), "key")
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestResetPublishesEvent(t *testing.T) {
	svc := new(mocks.Service)
	publisher := new(evmocks.Publisher)
	es := events.NewEventStoreMiddleware(svc, publisher)

	svc.On("Reset", context.Background()).Return(nil)
	publisher.On("Publish", context.Background(), mock.Anything).Return(nil)

	err := es.Reset(context.Background())
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestStoreFailureDoesNotPublish(t *testing.T) {
	svc := new(mocks.Service)
	publisher := new(evmocks.Publisher)
	es := events.NewEventStoreMiddleware(svc, publisher)

	svc.On("Store", context.Background(), mock.Anything).Return("", assert.AnError)

	_, err := es.Store(context.Background(), cache.StringValue("hello"))
	assert.NotNil(t, err, "expected error")
	publisher.AssertNumberOfCalls(t, "Publish", 0)
}
