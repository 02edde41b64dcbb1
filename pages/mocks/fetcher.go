// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stashkv/stash/pages"
	"github.com/stretchr/testify/mock"
)

var _ pages.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock page fetcher.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ret := m.Called(ctx, url)

	return ret.String(0), ret.Error(1)
}
