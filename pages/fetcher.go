// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stashkv/stash/pkg/errors"
)

const defFetchTimeout = 30 * time.Second

// ErrStatus indicates a non-OK HTTP status from the remote server.
var ErrStatus = errors.New("unexpected response status")

var _ Fetcher = (*httpFetcher)(nil)

type httpFetcher struct {
	client *http.Client
}

// NewFetcher returns a page fetcher using the given HTTP client timeout.
func NewFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = defFetchTimeout
	}
	return &httpFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (hf *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := hf.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrap(ErrStatus, fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
