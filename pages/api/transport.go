// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport of the pages service.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stashkv/stash"
	"github.com/stashkv/stash/internal/api"
	"github.com/stashkv/stash/pages"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stashkv/stash/pkg/errors"
)

// MakeHandler returns a HTTP handler for the pages service endpoints.
func MakeHandler(svc pages.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/pages", func(r chi.Router) {
		r.Get("/", kithttp.NewServer(
			viewPageEndpoint(svc),
			decodePageReq,
			api.EncodeResponse,
			opts...,
		).ServeHTTP)
		r.Get("/accesses", kithttp.NewServer(
			accessesEndpoint(svc),
			decodePageReq,
			api.EncodeResponse,
			opts...,
		).ServeHTTP)
	})

	mux.Get("/health", stash.Health("pages", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodePageReq(_ context.Context, r *http.Request) (interface{}, error) {
	url, err := apiutil.ReadStringQuery(r, api.URLKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := pageReq{
		url: url,
	}

	return req, nil
}
