// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport of the cache service.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stashkv/stash"
	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/internal/api"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stashkv/stash/pkg/errors"
)

// MakeHandler returns a HTTP handler for the cache service endpoints.
func MakeHandler(svc cache.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/values", func(r chi.Router) {
		r.Post("/", kithttp.NewServer(
			storeEndpoint(svc),
			decodeStoreReq,
			api.EncodeResponse,
			opts...,
		).ServeHTTP)
		r.Route("/{key}", func(r chi.Router) {
			r.Get("/", kithttp.NewServer(
				viewEndpoint(svc),
				decodeViewReq,
				api.EncodeResponse,
				opts...,
			).ServeHTTP)
			r.Delete("/", kithttp.NewServer(
				removeEndpoint(svc),
				decodeRemoveReq,
				api.EncodeResponse,
				opts...,
			).ServeHTTP)
		})
	})

	mux.Get("/health", stash.Health("cache", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeStoreReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req storeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeViewReq(_ context.Context, r *http.Request) (interface{}, error) {
	kind, err := apiutil.ReadStringQuery(r, api.KindKey, api.DefKind)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := viewReq{
		key:  chi.URLParam(r, "key"),
		kind: kind,
	}

	return req, nil
}

func decodeRemoveReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := removeReq{
		key: chi.URLParam(r, "key"),
	}

	return req, nil
}
