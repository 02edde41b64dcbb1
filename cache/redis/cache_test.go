// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package redis_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stashkv/stash/cache"
	cacheredis "github.com/stashkv/stash/cache/redis"
	"github.com/stashkv/stash/internal/testsutil"
	"github.com/stashkv/stash/pkg/errors"
	repoerr "github.com/stashkv/stash/pkg/errors/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRetrieve(t *testing.T) {
	repo := cacheredis.NewRepository(redisClient)

	cases := []struct {
		desc  string
		value cache.Value
	}{
		{
			desc:  "string value",
			value: cache.StringValue("hello"),
		},
		{
			desc:  "bytes value",
			value: cache.BytesValue([]byte{0xde, 0xad, 0xbe, 0xef}),
		},
		{
			desc:  "int value",
			value: cache.IntValue(-42),
		},
		{
			desc:  "float value",
			value: cache.FloatValue(3.14),
		},
	}

	for _, tc := range cases {
		key := testsutil.GenerateUUID(t)

		err := repo.Save(context.Background(), key, tc.value)
		require.Nil(t, err, fmt.Sprintf("%s: unexpected save error %v\n", tc.desc, err))

		raw, err := repo.Retrieve(context.Background(), key)
		require.Nil(t, err, fmt.Sprintf("%s: unexpected retrieve error %v\n", tc.desc, err))
		assert.Equal(t, tc.value.Encode(), raw, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.value.Encode(), raw))

		decoded, err := cache.Decode(raw, tc.value.Kind())
		require.Nil(t, err, fmt.Sprintf("%s: unexpected decode error %v\n", tc.desc, err))
		assert.Equal(t, tc.value, decoded, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.value, decoded))
	}
}

func TestRetrieveNonExistent(t *testing.T) {
	repo := cacheredis.NewRepository(redisClient)

	_, err := repo.Retrieve(context.Background(), testsutil.GenerateUUID(t))
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %v got %v\n", repoerr.ErrNotFound, err))
}

func TestRemove(t *testing.T) {
	repo := cacheredis.NewRepository(redisClient)

	key := testsutil.GenerateUUID(t)
	err := repo.Save(context.Background(), key, cache.StringValue("hello"))
	require.Nil(t, err, fmt.Sprintf("unexpected save error %v\n", err))

	err = repo.Remove(context.Background(), key)
	assert.Nil(t, err, fmt.Sprintf("unexpected remove error %v\n", err))

	_, err = repo.Retrieve(context.Background(), key)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %v got %v\n", repoerr.ErrNotFound, err))

	err = repo.Remove(context.Background(), key)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %v got %v\n", repoerr.ErrNotFound, err))
}

func TestReset(t *testing.T) {
	repo := cacheredis.NewRepository(redisClient)

	keys := make([]string, 5)
	for i := range keys {
		keys[i] = testsutil.GenerateUUID(t)
		err := repo.Save(context.Background(), keys[i], cache.IntValue(int64(i)))
		require.Nil(t, err, fmt.Sprintf("unexpected save error %v\n", err))
	}

	err := repo.Reset(context.Background())
	assert.Nil(t, err, fmt.Sprintf("unexpected reset error %v\n", err))

	for _, key := range keys {
		_, err := repo.Retrieve(context.Background(), key)
		assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %v got %v\n", repoerr.ErrNotFound, err))
	}
}
