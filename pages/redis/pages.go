// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package redis contains the Redis implementation of the pages repository.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stashkv/stash/pages"
	"github.com/stashkv/stash/pkg/errors"
	repoerr "github.com/stashkv/stash/pkg/errors/repository"
)

const countPrefix = "count"

var _ pages.Repository = (*pagesRepository)(nil)

type pagesRepository struct {
	client *redis.Client
}

// NewRepository returns a Redis pages repository implementation.
func NewRepository(client *redis.Client) pages.Repository {
	return &pagesRepository{
		client: client,
	}
}

func (pr *pagesRepository) Content(ctx context.Context, url string) (string, error) {
	content, err := pr.client.Get(ctx, url).Result()
	// Redis returns Nil Reply when key does not exist.
	if err == redis.Nil {
		return "", repoerr.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return content, nil
}

func (pr *pagesRepository) SetContent(ctx context.Context, url, content string, ttl time.Duration) error {
	if err := pr.client.SetEx(ctx, url, content, ttl).Err(); err != nil {
		return errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return nil
}

func (pr *pagesRepository) IncrAccesses(ctx context.Context, url string) (uint64, error) {
	count, err := pr.client.Incr(ctx, countKey(url)).Result()
	if err != nil {
		return 0, errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return uint64(count), nil
}

func (pr *pagesRepository) Accesses(ctx context.Context, url string) (uint64, error) {
	count, err := pr.client.Get(ctx, countKey(url)).Uint64()
	// A URL that was never fetched has no counter yet.
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return count, nil
}

func countKey(url string) string {
	return fmt.Sprintf("%s:%s", countPrefix, url)
}
