// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package cache_test

import (
	"fmt"
	"testing"

	"github.com/stashkv/stash/cache"
	svcerr "github.com/stashkv/stash/pkg/errors/service"
	"github.com/stretchr/testify/assert"
)

func TestNewValue(t *testing.T) {
	cases := []struct {
		desc  string
		input interface{}
		kind  cache.Kind
		err   error
	}{
		{
			desc:  "string value",
			input: "hello",
			kind:  cache.String,
			err:   nil,
		},
		{
			desc:  "bytes value",
			input: []byte{0x01, 0x02},
			kind:  cache.Bytes,
			err:   nil,
		},
		{
			desc:  "int value",
			input: 42,
			kind:  cache.Int,
			err:   nil,
		},
		{
			desc:  "int64 value",
			input: int64(-7),
			kind:  cache.Int,
			err:   nil,
		},
		{
			desc:  "float value",
			input: 3.14,
			kind:  cache.Float,
			err:   nil,
		},
		{
			desc:  "float32 value",
			input: float32(1.5),
			kind:  cache.Float,
			err:   nil,
		},
		{
			desc:  "unsupported bool value",
			input: true,
			err:   svcerr.ErrUnsupportedType,
		},
		{
			desc:  "unsupported map value",
			input: map[string]string{"a": "b"},
			err:   svcerr.ErrUnsupportedType,
		},
	}

	for _, tc := range cases {
		value, err := cache.NewValue(tc.input)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
		if err == nil {
			assert.Equal(t, tc.kind, value.Kind(), fmt.Sprintf("%s: expected kind %v got %v\n", tc.desc, tc.kind, value.Kind()))
		}
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		desc  string
		value cache.Value
	}{
		{
			desc:  "string round trip",
			value: cache.StringValue("hello"),
		},
		{
			desc:  "bytes round trip",
			value: cache.BytesValue([]byte{0xde, 0xad, 0xbe, 0xef}),
		},
		{
			desc:  "int round trip",
			value: cache.IntValue(-123456789),
		},
		{
			desc:  "float round trip",
			value: cache.FloatValue(3.1415926535),
		},
	}

	for _, tc := range cases {
		decoded, err := cache.Decode(tc.value.Encode(), tc.value.Kind())
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.value, decoded, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.value, decoded))
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		desc string
		raw  []byte
		kind cache.Kind
		err  error
	}{
		{
			desc: "text as integer",
			raw:  []byte("not a number"),
			kind: cache.Int,
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "text as float",
			raw:  []byte("not a number"),
			kind: cache.Float,
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "float as integer",
			raw:  []byte("3.14"),
			kind: cache.Int,
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "unknown kind",
			raw:  []byte("anything"),
			kind: cache.Kind(42),
			err:  svcerr.ErrUnsupportedType,
		},
	}

	for _, tc := range cases {
		_, err := cache.Decode(tc.raw, tc.kind)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		desc string
		name string
		kind cache.Kind
		err  error
	}{
		{desc: "string kind", name: "string", kind: cache.String},
		{desc: "bytes kind", name: "bytes", kind: cache.Bytes},
		{desc: "integer kind", name: "integer", kind: cache.Int},
		{desc: "float kind", name: "float", kind: cache.Float},
		{desc: "unknown kind", name: "blob", err: svcerr.ErrUnsupportedType},
		{desc: "empty kind", name: "", err: svcerr.ErrUnsupportedType},
	}

	for _, tc := range cases {
		kind, err := cache.ParseKind(tc.name)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.err, err))
		if err == nil {
			assert.Equal(t, tc.kind, kind, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.kind, kind))
			assert.Equal(t, tc.name, kind.String(), fmt.Sprintf("%s: expected name %s got %s\n", tc.desc, tc.name, kind.String()))
		}
	}
}
