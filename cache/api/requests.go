// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/base64"
	"math"
	"strconv"

	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stashkv/stash/pkg/errors"
)

type storeReq struct {
	Kind  string      `json:"kind,omitempty"`
	Value interface{} `json:"value"`
}

func (req storeReq) validate() error {
	if req.Value == nil {
		return apiutil.ErrEmptyValue
	}
	if req.Kind != "" {
		if _, err := cache.ParseKind(req.Kind); err != nil {
			return apiutil.ErrInvalidKind
		}
	}

	return nil
}

// value converts the request body into a cache value. When no kind is given
// it is inferred from the JSON type: strings stay text and numbers become
// floats. Binary payloads travel base64-encoded.
func (req storeReq) value() (cache.Value, error) {
	if req.Kind == "" {
		return cache.NewValue(req.Value)
	}

	kind, err := cache.ParseKind(req.Kind)
	if err != nil {
		return cache.Value{}, err
	}

	switch kind {
	case cache.String:
		s, ok := req.Value.(string)
		if !ok {
			return cache.Value{}, errors.ErrMalformedEntity
		}
		return cache.StringValue(s), nil
	case cache.Bytes:
		s, ok := req.Value.(string)
		if !ok {
			return cache.Value{}, errors.ErrMalformedEntity
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return cache.Value{}, errors.Wrap(errors.ErrMalformedEntity, err)
		}
		return cache.BytesValue(b), nil
	case cache.Int:
		switch v := req.Value.(type) {
		case float64:
			if v != math.Trunc(v) {
				return cache.Value{}, errors.ErrMalformedEntity
			}
			return cache.IntValue(int64(v)), nil
		case string:
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return cache.Value{}, errors.Wrap(errors.ErrMalformedEntity, err)
			}
			return cache.IntValue(i), nil
		default:
			return cache.Value{}, errors.ErrMalformedEntity
		}
	case cache.Float:
		switch v := req.Value.(type) {
		case float64:
			return cache.FloatValue(v), nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return cache.Value{}, errors.Wrap(errors.ErrMalformedEntity, err)
			}
			return cache.FloatValue(f), nil
		default:
			return cache.Value{}, errors.ErrMalformedEntity
		}
	default:
		return cache.Value{}, apiutil.ErrInvalidKind
	}
}

type viewReq struct {
	key  string
	kind string
}

func (req viewReq) validate() error {
	if req.key == "" {
		return apiutil.ErrMissingKey
	}
	if _, err := cache.ParseKind(req.kind); err != nil {
		return apiutil.ErrInvalidKind
	}

	return nil
}

type removeReq struct {
	key string
}

func (req removeReq) validate() error {
	if req.key == "" {
		return apiutil.ErrMissingKey
	}

	return nil
}
