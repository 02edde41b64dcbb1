// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/stashkv/stash/pages"
)

var _ pages.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service pages.Service
}

// MetricsMiddleware instruments the pages service by tracking request count
// and latency.
func MetricsMiddleware(service pages.Service, counter metrics.Counter, latency metrics.Histogram) pages.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (ms *metricsMiddleware) ViewPage(ctx context.Context, url string) (pages.Page, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_page").Add(1)
		ms.latency.With("method", "view_page").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.ViewPage(ctx, url)
}

func (ms *metricsMiddleware) Accesses(ctx context.Context, url string) (uint64, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "accesses").Add(1)
		ms.latency.With("method", "accesses").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.service.Accesses(ctx, url)
}
