// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/stashkv/stash"
	"github.com/stashkv/stash/pages"
)

var (
	_ stash.Response = (*pageRes)(nil)
	_ stash.Response = (*accessesRes)(nil)
)

type pageRes struct {
	pages.Page `json:",inline"`
}

func (res pageRes) Code() int {
	return http.StatusOK
}

func (res pageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res pageRes) Empty() bool {
	return false
}

type accessesRes struct {
	URL      string `json:"url"`
	Accesses uint64 `json:"accesses"`
}

func (res accessesRes) Code() int {
	return http.StatusOK
}

func (res accessesRes) Headers() map[string]string {
	return map[string]string{}
}

func (res accessesRes) Empty() bool {
	return false
}
