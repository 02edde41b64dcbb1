// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package cache provides temporary storage of values in an external
// key-value store under randomly generated keys.
package cache

import (
	"context"
	"strconv"

	svcerr "github.com/stashkv/stash/pkg/errors/service"
)

// Kind enumerates the value kinds the cache accepts.
type Kind uint8

const (
	// String is a text value.
	String Kind = iota
	// Bytes is a binary blob.
	Bytes
	// Int is a signed integer value.
	Int
	// Float is a floating-point value.
	Float
)

const unknown = "unknown"

// String representation of the given kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Int:
		return "integer"
	case Float:
		return "float"
	default:
		return unknown
	}
}

// Valid reports whether the kind is one of the supported kinds.
func (k Kind) Valid() bool {
	return k <= Float
}

// ParseKind converts a kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return String, nil
	case "bytes":
		return Bytes, nil
	case "integer":
		return Int, nil
	case "float":
		return Float, nil
	default:
		return Kind(0), svcerr.ErrUnsupportedType
	}
}

// Value is a single datum held by the cache. Regardless of kind, the store
// keeps it in its flat string form, the way Redis does; the kind determines
// how the flat form is produced and read back.
type Value struct {
	kind Kind
	str  string
	bin  []byte
	num  int64
	fl   float64
}

// StringValue returns a text value.
func StringValue(s string) Value {
	return Value{kind: String, str: s}
}

// BytesValue returns a binary value.
func BytesValue(b []byte) Value {
	return Value{kind: Bytes, bin: b}
}

// IntValue returns an integer value.
func IntValue(i int64) Value {
	return Value{kind: Int, num: i}
}

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value {
	return Value{kind: Float, fl: f}
}

// NewValue converts a native Go value into a cache Value. Values outside the
// four supported kinds are rejected.
func NewValue(v interface{}) (Value, error) {
	switch d := v.(type) {
	case string:
		return StringValue(d), nil
	case []byte:
		return BytesValue(d), nil
	case int:
		return IntValue(int64(d)), nil
	case int64:
		return IntValue(d), nil
	case float32:
		return FloatValue(float64(d)), nil
	case float64:
		return FloatValue(d), nil
	default:
		return Value{}, svcerr.ErrUnsupportedType
	}
}

// Decode interprets the flat store form as a value of the given kind.
func Decode(raw []byte, kind Kind) (Value, error) {
	switch kind {
	case String:
		return StringValue(string(raw)), nil
	case Bytes:
		return BytesValue(raw), nil
	case Int:
		i, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return Value{}, svcerr.ErrMalformedEntity
		}
		return IntValue(i), nil
	case Float:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return Value{}, svcerr.ErrMalformedEntity
		}
		return FloatValue(f), nil
	default:
		return Value{}, svcerr.ErrUnsupportedType
	}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Encode returns the flat store form of the value.
func (v Value) Encode() []byte {
	switch v.kind {
	case String:
		return []byte(v.str)
	case Bytes:
		return v.bin
	case Int:
		return []byte(strconv.FormatInt(v.num, 10))
	case Float:
		return []byte(strconv.FormatFloat(v.fl, 'g', -1, 64))
	default:
		return nil
	}
}

// Interface returns the native Go form of the value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case String:
		return v.str
	case Bytes:
		return v.bin
	case Int:
		return v.num
	case Float:
		return v.fl
	default:
		return nil
	}
}

// Repository specifies the persistence API backed by the external store.
type Repository interface {
	// Save persists the value under the given key.
	Save(ctx context.Context, key string, value Value) error

	// Retrieve returns the flat store form of the value stored under the
	// given key.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Remove deletes the value stored under the given key.
	Remove(ctx context.Context, key string) error

	// Reset removes all values from the backing database.
	Reset(ctx context.Context) error
}

// Service specifies an API that must be fullfiled by the cache service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// Store persists the value under a fresh randomly generated key and
	// returns the key.
	Store(ctx context.Context, value Value) (string, error)

	// Retrieve returns the value stored under the given key, decoded as
	// the requested kind.
	Retrieve(ctx context.Context, key string, kind Kind) (Value, error)

	// Remove deletes the value stored under the given key.
	Remove(ctx context.Context, key string) error

	// Reset removes all values from the backing database.
	Reset(ctx context.Context) error
}
