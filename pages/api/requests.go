// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/url"

	"github.com/stashkv/stash/pkg/apiutil"
)

type pageReq struct {
	url string
}

func (req pageReq) validate() error {
	if req.url == "" {
		return apiutil.ErrMissingURL
	}
	u, err := url.Parse(req.url)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apiutil.ErrInvalidQueryParams
	}

	return nil
}
