// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/stashkv/stash/cache"
)

var _ cache.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service cache.Service
}

// LoggingMiddleware adds logging facilities to the cache service.
func LoggingMiddleware(service cache.Service, logger *slog.Logger) cache.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) Store(ctx context.Context, value cache.Value) (key string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("value",
				slog.String("kind", value.Kind().String()),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Store value failed", args...)
			return
		}
		args = append(args, slog.String("key", key))
		lm.logger.Info("Store value completed successfully", args...)
	}(time.Now())

	return lm.service.Store(ctx, value)
}

func (lm *loggingMiddleware) Retrieve(ctx context.Context, key string, kind cache.Kind) (value cache.Value, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("key", key),
			slog.String("kind", kind.String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Retrieve value failed", args...)
			return
		}
		lm.logger.Info("Retrieve value completed successfully", args...)
	}(time.Now())

	return lm.service.Retrieve(ctx, key, kind)
}

func (lm *loggingMiddleware) Remove(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("key", key),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove value failed", args...)
			return
		}
		lm.logger.Info("Remove value completed successfully", args...)
	}(time.Now())

	return lm.service.Remove(ctx, key)
}

func (lm *loggingMiddleware) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Reset cache failed", args...)
			return
		}
		lm.logger.Info("Reset cache completed successfully", args...)
	}(time.Now())

	return lm.service.Reset(ctx)
}
