// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stashkv/stash/cache"
	"github.com/stretchr/testify/mock"
)

var _ cache.Service = (*Service)(nil)

// Service is a mock cache service.
type Service struct {
	mock.Mock
}

func (m *Service) Store(ctx context.Context, value cache.Value) (string, error) {
	ret := m.Called(ctx, value)

	return ret.String(0), ret.Error(1)
}

func (m *Service) Retrieve(ctx context.Context, key string, kind cache.Kind) (cache.Value, error) {
	ret := m.Called(ctx, key, kind)

	return ret.Get(0).(cache.Value), ret.Error(1)
}

func (m *Service) Remove(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)

	return ret.Error(0)
}

func (m *Service) Reset(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}
