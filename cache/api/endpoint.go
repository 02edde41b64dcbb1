// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stashkv/stash/pkg/errors"
)

func storeEndpoint(svc cache.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(storeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := req.value()
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		key, err := svc.Store(ctx, value)
		if err != nil {
			return nil, err
		}

		return storeRes{
			Key: key,
		}, nil
	}
}

func viewEndpoint(svc cache.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		kind, err := cache.ParseKind(req.kind)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := svc.Retrieve(ctx, req.key, kind)
		if err != nil {
			return nil, err
		}

		return viewRes{
			Key:   req.key,
			Kind:  kind.String(),
			Value: value.Interface(),
		}, nil
	}
}

func removeEndpoint(svc cache.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(removeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.Remove(ctx, req.key); err != nil {
			return nil, err
		}

		return removeRes{}, nil
	}
}
