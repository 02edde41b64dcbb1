// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides the logging and metrics decorators of the
// cache service.
package middleware
