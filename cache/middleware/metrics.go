// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/stashkv/stash/cache"
)

var _ cache.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service cache.Service
}

// MetricsMiddleware instruments the cache service by tracking request count
// and latency.
func MetricsMiddleware(service cache.Service, counter metrics.Counter, latency metrics.Histogram) cache.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (ms *metricsMiddleware) Store(ctx context.Context, value cache.Value) (string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "store").Add(1)
		ms.latency.With("method", "store").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.Store(ctx, value)
}

func (ms *metricsMiddleware) Retrieve(ctx context.Context, key string, kind cache.Kind) (cache.Value, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "retrieve").Add(1)
		ms.latency.With("method", "retrieve").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.Retrieve(ctx, key, kind)
}

func (ms *metricsMiddleware) Remove(ctx context.Context, key string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "remove").Add(1)
		ms.latency.With("method", "remove").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.Remove(ctx, key)
}

func (ms *metricsMiddleware) Reset(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "reset").Add(1)
		ms.latency.With("method", "reset").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.Reset(ctx)
}
