// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stashkv/stash/pkg/events"
	"github.com/stretchr/testify/mock"
)

var _ events.Publisher = (*Publisher)(nil)

// Publisher is a mock events publisher.
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, event events.Event) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}

func (m *Publisher) Close() error {
	ret := m.Called()

	return ret.Error(0)
}
