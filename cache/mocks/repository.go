// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stashkv/stash/cache"
	"github.com/stretchr/testify/mock"
)

var _ cache.Repository = (*Repository)(nil)

// Repository is a mock cache repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, key string, value cache.Value) error {
	ret := m.Called(ctx, key, value)

	return ret.Error(0)
}

func (m *Repository) Retrieve(ctx context.Context, key string) ([]byte, error) {
	ret := m.Called(ctx, key)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]byte), ret.Error(1)
}

func (m *Repository) Remove(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)

	return ret.Error(0)
}

func (m *Repository) Reset(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}
