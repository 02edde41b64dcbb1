// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/stashkv/stash/pages"
)

var _ pages.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service pages.Service
}

// LoggingMiddleware adds logging facilities to the pages service.
func LoggingMiddleware(service pages.Service, logger *slog.Logger) pages.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) ViewPage(ctx context.Context, url string) (page pages.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("url", url),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View page failed", args...)
			return
		}
		args = append(args, slog.Bool("cached", page.Cached))
		lm.logger.Info("View page completed successfully", args...)
	}(time.Now())

	return lm.service.ViewPage(ctx, url)
}

func (lm *loggingMiddleware) Accesses(ctx context.Context, url string) (count uint64, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("url", url),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View page accesses failed", args...)
			return
		}
		args = append(args, slog.Uint64("accesses", count))
		lm.logger.Info("View page accesses completed successfully", args...)
	}(time.Now())

	return lm.service.Accesses(ctx, url)
}
