// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package main contains pages main function to start the pages service.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stashkv/stash/internal"
	redisclient "github.com/stashkv/stash/internal/clients/redis"
	"github.com/stashkv/stash/internal/server"
	httpserver "github.com/stashkv/stash/internal/server/http"
	stashlog "github.com/stashkv/stash/logger"
	"github.com/stashkv/stash/pages"
	"github.com/stashkv/stash/pages/api"
	"github.com/stashkv/stash/pages/middleware"
	pagesredis "github.com/stashkv/stash/pages/redis"
	"github.com/stashkv/stash/pkg/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "pages"
	envPrefixHTTP  = "STASH_PAGES_HTTP_"
	defSvcHTTPPort = "9009"
)

type config struct {
	LogLevel     string        `env:"STASH_PAGES_LOG_LEVEL"     envDefault:"info"`
	CacheURL     string        `env:"STASH_PAGES_CACHE_URL"     envDefault:"redis://localhost:6379/0"`
	CacheTTL     time.Duration `env:"STASH_PAGES_CACHE_TTL"     envDefault:"10s"`
	FetchTimeout time.Duration `env:"STASH_PAGES_FETCH_TIMEOUT" envDefault:"30s"`
	InstanceID   string        `env:"STASH_PAGES_INSTANCE_ID"   envDefault:""`
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

	repo := pagesredis.NewRepository(client)
	fetcher := pages.NewFetcher(cfg.FetchTimeout)

	svc := pages.NewService(repo, fetcher, cfg.CacheTTL)
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)

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
