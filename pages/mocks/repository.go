// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"time"

	"github.com/stashkv/stash/pages"
	"github.com/stretchr/testify/mock"
)

var _ pages.Repository = (*Repository)(nil)

// Repository is a mock pages repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) Content(ctx context.Context, url string) (string, error) {
	ret := m.Called(ctx, url)

	return ret.String(0), ret.Error(1)
}

func (m *Repository) SetContent(ctx context.Context, url, content string, ttl time.Duration) error {
	ret := m.Called(ctx, url, content, ttl)

	return ret.Error(0)
}

func (m *Repository) IncrAccesses(ctx context.Context, url string) (uint64, error) {
	ret := m.Called(ctx, url)

	return ret.Get(0).(uint64), ret.Error(1)
}

func (m *Repository) Accesses(ctx context.Context, url string) (uint64, error) {
	ret := m.Called(ctx, url)

	return ret.Get(0).(uint64), ret.Error(1)
}
