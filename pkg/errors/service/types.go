// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/stashkv/stash/pkg/errors"

// Wrapper for Service errors.
var (
	// ErrUnsupportedType indicates a value of a kind the cache does not accept.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrStoreUnavailable indicates failure to reach the key-value store.
	ErrStoreUnavailable = errors.New("key-value store unavailable")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = errors.New("malformed entity specification")

	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.New("entity not found")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.New("failed to create entity in the store")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.New("view entity failed")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = errors.New("failed to remove entity")

	// ErrUniqueID indicates an error in generating a unique ID.
	ErrUniqueID = errors.New("failed to generate unique identifier")

	// ErrFetchPage indicates failure to fetch a remote page.
	ErrFetchPage = errors.New("failed to fetch page")
)
