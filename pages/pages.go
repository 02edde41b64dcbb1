// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package pages provides retrieval of web pages with short-lived caching of
// their content and per-URL access counting.
package pages

import (
	"context"
	"time"
)

// Page is the content of a fetched URL.
type Page struct {
	URL     string `json:"url"`
	Content string `json:"content"`
	Cached  bool   `json:"cached"`
}

// Repository specifies the page cache persistence API backed by the external
// store.
type Repository interface {
	// Content returns the cached content of the given URL.
	Content(ctx context.Context, url string) (string, error)

	// SetContent caches the content of the given URL for the given
	// duration.
	SetContent(ctx context.Context, url, content string, ttl time.Duration) error

	// IncrAccesses increments and returns the access count of the given
	// URL.
	IncrAccesses(ctx context.Context, url string) (uint64, error)

	// Accesses returns the access count of the given URL.
	Accesses(ctx context.Context, url string) (uint64, error)
}

// Fetcher specifies retrieval of remote page content.
type Fetcher interface {
	// Fetch returns the content of the given URL.
	Fetch(ctx context.Context, url string) (string, error)
}

// Service specifies an API that must be fullfiled by the pages service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// ViewPage returns the content of the given URL, served from the
	// cache when present. On a cache miss the access counter is
	// incremented and the fetched content is cached.
	ViewPage(ctx context.Context, url string) (Page, error)

	// Accesses returns how many times the given URL has been fetched.
	Accesses(ctx context.Context, url string) (uint64, error)
}
