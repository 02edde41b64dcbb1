// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = New("malformed entity specification")

	// ErrUnsupportedType indicates a value of a kind the cache does not accept.
	ErrUnsupportedType = New("unsupported value type")

	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = New("entity not found")

	// ErrStoreUnavailable indicates failure to reach the key-value store.
	ErrStoreUnavailable = New("key-value store unavailable")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = New("failed to create entity in the store")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = New("view entity failed")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = New("failed to remove entity")

	// ErrUniqueID indicates an error in generating a unique ID.
	ErrUniqueID = New("failed to generate unique identifier")
)
