// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package redis contains the Redis implementation of the cache repository.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/errors"
	repoerr "github.com/stashkv/stash/pkg/errors/repository"
)

var _ cache.Repository = (*cacheRepository)(nil)

type cacheRepository struct {
	client *redis.Client
}

// NewRepository returns a Redis cache repository implementation.
func NewRepository(client *redis.Client) cache.Repository {
	return &cacheRepository{
		client: client,
	}
}

// Values are kept without expiration. Removal is either explicit or
// delegated to the store.
func (cr *cacheRepository) Save(ctx context.Context, key string, value cache.Value) error {
	if err := cr.client.Set(ctx, key, value.Encode(), 0).Err(); err != nil {
		return errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return nil
}

func (cr *cacheRepository) Retrieve(ctx context.Context, key string) ([]byte, error) {
	raw, err := cr.client.Get(ctx, key).Bytes()
	// Redis returns Nil Reply when key does not exist.
	if err == redis.Nil {
		return nil, repoerr.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return raw, nil
}

func (cr *cacheRepository) Remove(ctx context.Context, key string) error {
	removed, err := cr.client.Del(ctx, key).Result()
	if err != nil {
		return errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}
	if removed == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (cr *cacheRepository) Reset(ctx context.Context) error {
	if err := cr.client.FlushDB(ctx).Err(); err != nil {
		return errors.Wrap(repoerr.ErrStoreUnavailable, err)
	}

	return nil
}
