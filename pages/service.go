// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"context"
	"time"

	"github.com/stashkv/stash/pkg/errors"
	repoerr "github.com/stashkv/stash/pkg/errors/repository"
	svcerr "github.com/stashkv/stash/pkg/errors/service"
)

// DefTTL is how long page content stays cached when no TTL is configured.
const DefTTL = 10 * time.Second

var _ Service = (*service)(nil)

type service struct {
	repo    Repository
	fetcher Fetcher
	ttl     time.Duration
}

// NewService instantiates the pages service implementation.
func NewService(repo Repository, fetcher Fetcher, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefTTL
	}
	return &service{
		repo:    repo,
		fetcher: fetcher,
		ttl:     ttl,
	}
}

func (svc *service) ViewPage(ctx context.Context, url string) (Page, error) {
	content, err := svc.repo.Content(ctx, url)
	switch {
	case err == nil:
		return Page{URL: url, Content: content, Cached: true}, nil
	case !errors.Contains(err, repoerr.ErrNotFound):
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	// The counter tracks fetches, so cache hits do not increment it.
	if _, err := svc.repo.IncrAccesses(ctx, url); err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	content, err = svc.fetcher.Fetch(ctx, url)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrFetchPage, err)
	}

	if err := svc.repo.SetContent(ctx, url, content, svc.ttl); err != nil {
		return Page{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return Page{URL: url, Content: content, Cached: false}, nil
}

func (svc *service) Accesses(ctx context.Context, url string) (uint64, error) {
	count, err := svc.repo.Accesses(ctx, url)
	if err != nil {
		return 0, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return count, nil
}
