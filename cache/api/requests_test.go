// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"testing"

	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/apiutil"
	"github.com/stretchr/testify/assert"
)

func TestStoreReqValidation(t *testing.T) {
	cases := []struct {
		desc string
		req  storeReq
		err  error
	}{
		{
			desc: "valid request",
			req:  storeReq{Value: "hello"},
			err:  nil,
		},
		{
			desc: "valid request with kind",
			req:  storeReq{Kind: "integer", Value: float64(42)},
			err:  nil,
		},
		{
			desc: "missing value",
			req:  storeReq{Kind: "string"},
			err:  apiutil.ErrEmptyValue,
		},
		{
			desc: "invalid kind",
			req:  storeReq{Kind: "blob", Value: "hello"},
			err:  apiutil.ErrInvalidKind,
		},
	}

	for _, tc := range cases {
		err := tc.req.validate()
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
	}
}

func TestStoreReqValue(t *testing.T) {
	cases := []struct {
		desc  string
		req   storeReq
		value cache.Value
		fails bool
	}{
		{
			desc:  "inferred string",
			req:   storeReq{Value: "hello"},
			value: cache.StringValue("hello"),
		},
		{
			desc:  "inferred float",
			req:   storeReq{Value: float64(3.14)},
			value: cache.FloatValue(3.14),
		},
		{
			desc:  "explicit integer from number",
			req:   storeReq{Kind: "integer", Value: float64(42)},
			value: cache.IntValue(42),
		},
		{
			desc:  "explicit integer from string",
			req:   storeReq{Kind: "integer", Value: "42"},
			value: cache.IntValue(42),
		},
		{
			desc:  "explicit float from string",
			req:   storeReq{Kind: "float", Value: "3.14"},
			value: cache.FloatValue(3.14),
		},
		{
			desc:  "explicit bytes from base64",
			req:   storeReq{Kind: "bytes", Value: "3q2+7w=="},
			value: cache.BytesValue([]byte{0xde, 0xad, 0xbe, 0xef}),
		},
		{
			desc:  "fractional number as integer",
			req:   storeReq{Kind: "integer", Value: float64(3.14)},
			fails: true,
		},
		{
			desc:  "non-string as bytes",
			req:   storeReq{Kind: "bytes", Value: float64(1)},
			fails: true,
		},
		{
			desc:  "invalid base64 as bytes",
			req:   storeReq{Kind: "bytes", Value: "not base64!"},
			fails: true,
		},
		{
			desc:  "unsupported inferred type",
			req:   storeReq{Value: true},
			fails: true,
		},
	}

	for _, tc := range cases {
		value, err := tc.req.value()
		if tc.fails {
			assert.NotNil(t, err, fmt.Sprintf("%s: expected error\n", tc.desc))
			continue
		}
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.value, value, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.value, value))
	}
}

func TestViewReqValidation(t *testing.T) {
	cases := []struct {
		desc string
		req  viewReq
		err  error
	}{
		{
			desc: "valid request",
			req:  viewReq{key: "key", kind: "string"},
			err:  nil,
		},
		{
			desc: "missing key",
			req:  viewReq{key: "", kind: "string"},
			err:  apiutil.ErrMissingKey,
		},
		{
			desc: "invalid kind",
			req:  viewReq{key: "key", kind: "blob"},
			err:  apiutil.ErrInvalidKind,
		},
	}

	for _, tc := range cases {
		err := tc.req.validate()
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
	}
}

func TestRemoveReqValidation(t *testing.T) {
	cases := []struct {
		desc string
		req  removeReq
		err  error
	}{
		{
			desc: "valid request",
			req:  removeReq{key: "key"},
			err:  nil,
		},
		{
			desc: "missing key",
			req:  removeReq{key: ""},
			err:  apiutil.ErrMissingKey,
		},
	}

	for _, tc := range cases {
		err := tc.req.validate()
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
	}
}
