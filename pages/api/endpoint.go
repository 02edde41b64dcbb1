// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/stashkv/stash/pages"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stashkv/stash/pkg/errors"
)

func viewPageEndpoint(svc pages.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(pageReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ViewPage(ctx, req.url)
		if err != nil {
			return nil, err
		}

		return pageRes{
			Page: page,
		}, nil
	}
}

func accessesEndpoint(svc pages.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(pageReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		count, err := svc.Accesses(ctx, req.url)
		if err != nil {
			return nil, err
		}

		return accessesRes{
			URL:      req.url,
			Accesses: count,
		}, nil
	}
}
