// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stashkv/stash/pages"
	"github.com/stretchr/testify/mock"
)

var _ pages.Service = (*Service)(nil)

// Service is a mock pages service.
type Service struct {
	mock.Mock
}

func (m *Service) ViewPage(ctx context.Context, url string) (pages.Page, error) {
	ret := m.Called(ctx, url)

	return ret.Get(0).(pages.Page), ret.Error(1)
}

func (m *Service) Accesses(ctx context.Context, url string) (uint64, error) {
	ret := m.Called(ctx, url)

	return ret.Get(0).(uint64), ret.Error(1)
}
