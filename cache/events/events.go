// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/pkg/events"
)

const (
	cachePrefix = "cache."
	cacheStore  = cachePrefix + "store"
	cacheRemove = cachePrefix + "remove"
	cacheReset  = cachePrefix + "reset"
)

var (
	_ events.Event = (*storeEvent)(nil)
	_ events.Event = (*removeEvent)(nil)
	_ events.Event = (*resetEvent)(nil)
)

type storeEvent struct {
	key  string
	kind cache.Kind
}

func (se storeEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": cacheStore,
		"key":       se.key,
		"kind":      se.kind.String(),
	}, nil
}

type removeEvent struct {
	key string
}

func (re removeEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": cacheRemove,
		"key":       re.key,
	}, nil
}

type resetEvent struct{}

func (resetEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": cacheReset,
	}, nil
}
