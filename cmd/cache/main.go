// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package main contains cache main function to start the cache service.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/stashkv/stash"
	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/cache/api"
	cacheevents "github.com/stashkv/stash/cache/events"
	"github.com/stashkv/stash/cache/middleware"
	cacheredis "github.com/stashkv/stash/cache/redis"
	"github.com/stashkv/stash/internal"
	redisclient "github.com/stashkv/stash/internal/clients/redis"
	"github.com/stashkv/stash/internal/server"
	httpserver "github.com/stashkv/stash/internal/server/http"
	stashlog "github.com/stashkv/stash/logger"
	"github.com/stashkv/stash/pkg/events"
	eventsredis "github.com/stashkv/stash/pkg/events/redis"
	"github.com/stashkv/stash/pkg/ulid"
	"github.com/stashkv/stash/pkg/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "cache"
	envPrefixHTTP  = "STASH_CACHE_HTTP_"
	defSvcHTTPPort = "9008"

	streamID = "stash.cache"
)

type config struct {
	LogLevel     string `env:"STASH_CACHE_LOG_LEVEL"      envDefault:"info"`
	CacheURL     string `env:"STASH_CACHE_URL"            envDefault:"redis://localhost:6379/0"`
	ESURL        string `env:"STASH_CACHE_ES_URL"         envDefault:""`
	KeyFormat    string `env:"STASH_CACHE_KEY_FORMAT"     envDefault:"uuid"`
	ResetOnStart bool   `env:"STASH_CACHE_RESET_ON_START" envDefault:"false"`
	InstanceID   string `env:"STASH_CACHE_INSTANCE_ID"    envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := stashlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}
	var exitCode int
	defer stashlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	client, err := redisclient.Connect(cfg.CacheURL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to redis: %s", err))
		exitCode = 1
		return
	}
	defer client.Close()

	var idProvider stash.IDProvider
	switch cfg.KeyFormat {
	case "ulid":
		idProvider = ulid.New()
	default:
		idProvider = uuid.New()
	}

	svc := cache.NewService(cacheredis.NewRepository(client), idProvider)

	if cfg.ESURL != "" {
		publisher, err := eventsredis.NewPublisher(ctx, cfg.ESURL, streamID, events.UnpublishedEventsCheckInterval)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to connect to event store: %s", err))
			exitCode = 1
			return
		}
		defer publisher.Close()
		svc = cacheevents.NewEventStoreMiddleware(svc, publisher)
	}

	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)

	if cfg.ResetOnStart {
		if err := svc.Reset(ctx); err != nil {
			logger.Error(fmt.Sprintf("failed to reset cache: %s", err))
			exitCode = 1
			return
		}
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	httpSvr := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return httpSvr.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, httpSvr)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}
