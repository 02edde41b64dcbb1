// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package repository

import "github.com/stashkv/stash/pkg/errors"

// Wrapper for Repository errors.
var (
	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.New("entity not found")

	// ErrStoreUnavailable indicates failure to reach the key-value store.
	ErrStoreUnavailable = errors.New("key-value store unavailable")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.New("failed to create entity in the store")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = errors.New("failed to remove entity")
)
