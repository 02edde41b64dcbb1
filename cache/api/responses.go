// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/stashkv/stash"
)

var (
	_ stash.Response = (*storeRes)(nil)
	_ stash.Response = (*viewRes)(nil)
	_ stash.Response = (*removeRes)(nil)
)

type storeRes struct {
	Key string `json:"key"`
}

func (res storeRes) Code() int {
	return http.StatusCreated
}

func (res storeRes) Headers() map[string]string {
	return map[string]string{}
}

func (res storeRes) Empty() bool {
	return false
}

type viewRes struct {
	Key   string      `json:"key"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

func (res viewRes) Code() int {
	return http.StatusOK
}

func (res viewRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewRes) Empty() bool {
	return false
}

type removeRes struct{}

func (res removeRes) Code() int {
	return http.StatusNoContent
}

func (res removeRes) Headers() map[string]string {
	return map[string]string{}
}

func (res removeRes) Empty() bool {
	return true
}
