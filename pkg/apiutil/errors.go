// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/stashkv/stash/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingKey indicates missing entity key.
	ErrMissingKey = errors.New("missing entity key")

	// ErrMissingURL indicates missing page URL.
	ErrMissingURL = errors.New("missing page url")

	// ErrEmptyValue indicates that an empty value was provided.
	ErrEmptyValue = errors.New("empty value provided")

	// ErrInvalidKind indicates an invalid value kind.
	ErrInvalidKind = errors.New("invalid value kind provided")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
