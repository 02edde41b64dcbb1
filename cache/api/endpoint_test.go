// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stashkv/stash/cache"
	"github.com/stashkv/stash/cache/api"
	"github.com/stashkv/stash/cache/mocks"
	"github.com/stashkv/stash/internal/testsutil"
	"github.com/stashkv/stash/logger"
	"github.com/stashkv/stash/pkg/errors"
	svcerr "github.com/stashkv/stash/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const contentType = "application/json"

type testRequest struct {
	client      *http.Client
	method      string
	url         string
	contentType string
	body        io.Reader
}

func (tr testRequest) make() (*http.Response, error) {
	req, err := http.NewRequest(tr.method, tr.url, tr.body)
	if err != nil {
		return nil, err
	}

	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}

	return tr.client.Do(req)
}

func newCacheServer(svc cache.Service) *httptest.Server {
	mglog, err := logger.New(io.Discard, "info")
	if err != nil {
		panic(err)
	}
	mux := api.MakeHandler(svc, mglog, "test-instance")

	return httptest.NewServer(mux)
}

func TestStoreEndpoint(t *testing.T) {
	svc := new(mocks.Service)
	ts := newCacheServer(svc)
	defer ts.Close()

	validKey := testsutil.GenerateUUID(t)

	cases := []struct {
		desc        string
		body        string
		contentType string
		svcKey      string
		svcErr      error
		status      int
	}{
		{
			desc:        "store string value",
			body:        `{"value": "hello"}`,
			contentType: contentType,
			svcKey:      validKey,
			svcErr:      nil,
			status:      http.StatusCreated,
		},
		{
			desc:        "store integer value with explicit kind",
			body:        `{"kind": "integer", "value": 42}`,
			contentType: contentType,
			svcKey:      validKey,
			svcErr:      nil,
			status:      http.StatusCreated,
		},
		{
			desc:        "store bytes value base64 encoded",
			body:        `{"kind": "bytes", "value": "3q2+7w=="}`,
			contentType: contentType,
			svcKey:      validKey,
			svcErr:      nil,
			status:      http.StatusCreated,
		},
		{
			desc:        "store with invalid kind",
			body:        `{"kind": "blob", "value": "hello"}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store with missing value",
			body:        `{"kind": "string"}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store with unsupported value type",
			body:        `{"value": true}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store with fractional integer",
			body:        `{"kind": "integer", "value": 3.14}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store with invalid base64 bytes",
			body:        `{"kind": "bytes", "value": "not base64!"}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store with malformed body",
			body:        `{"value": `,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "store without content type",
			body:        `{"value": "hello"}`,
			contentType: "",
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "store with unavailable store",
			body:        `{"value": "hello"}`,
			contentType: contentType,
			svcErr:      errors.Wrap(svcerr.ErrCreateEntity, svcerr.ErrStoreUnavailable),
			status:      http.StatusServiceUnavailable,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Store", mock.Anything, mock.Anything).Return(tc.svcKey, tc.svcErr)
		req := testRequest{
			client:      ts.Client(),
			method:      http.MethodPost,
			url:         fmt.Sprintf("%s/values", ts.URL),
			contentType: tc.contentType,
			body:        strings.NewReader(tc.body),
		}
		res, err := req.make()
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		svcCall.Unset()
	}
}

func TestViewEndpoint(t *testing.T) {
	svc := new(mocks.Service)
	ts := newCacheServer(svc)
	defer ts.Close()

	validKey := testsutil.GenerateUUID(t)

	cases := []struct {
		desc     string
		key      string
		query    string
		svcValue cache.Value
		svcErr   error
		status   int
	}{
		{
			desc:     "view string value",
			key:      validKey,
			query:    "",
			svcValue: cache.StringValue("hello"),
			svcErr:   nil,
			status:   http.StatusOK,
		},
		{
			desc:     "view integer value",
			key:      validKey,
			query:    "?kind=integer",
			svcValue: cache.IntValue(42),
			svcErr:   nil,
			status:   http.StatusOK,
		},
		{
			desc:   "view with invalid kind",
			key:    validKey,
			query:  "?kind=blob",
			status: http.StatusBadRequest,
		},
		{
			desc:   "view non-existent key",
			key:    validKey,
			query:  "",
			svcErr: errors.Wrap(svcerr.ErrViewEntity, svcerr.ErrNotFound),
			status: http.StatusNotFound,
		},
		{
			desc:   "view undecodable value",
			key:    validKey,
			query:  "?kind=integer",
			svcErr: errors.Wrap(svcerr.ErrMalformedEntity, svcerr.ErrMalformedEntity),
			status: http.StatusBadRequest,
		},
		{
			desc:   "view with unavailable store",
			key:    validKey,
			query:  "",
			svcErr: errors.Wrap(svcerr.ErrViewEntity, svcerr.ErrStoreUnavailable),
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Retrieve", mock.Anything, tc.key, mock.Anything).Return(tc.svcValue, tc.svcErr)
		req := testRequest{
			client: ts.Client(),
			method: http.MethodGet,
			url:    fmt.Sprintf("%s/values/%s%s", ts.URL, tc.key, tc.query),
		}
		res, err := req.make()
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		svcCall.Unset()
	}
}

func TestRemoveEndpoint(t *testing.T) {
	svc := new(mocks.Service)
	ts := newCacheServer(svc)
	defer ts.Close()

	validKey := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		key    string
		svcErr error
		status int
	}{
		{
			desc:   "remove existing key",
			key:    validKey,
			svcErr: nil,
			status: http.StatusNoContent,
		},
		{
			desc:   "remove non-existent key",
			key:    validKey,
			svcErr: errors.Wrap(svcerr.ErrRemoveEntity, svcerr.ErrNotFound),
			status: http.StatusNotFound,
		},
		{
			desc:   "remove with unavailable store",
			key:    validKey,
			svcErr: errors.Wrap(svcerr.ErrRemoveEntity, svcerr.ErrStoreUnavailable),
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range cases {
		svcCall := svc.On("Remove", mock.Anything, tc.key).Return(tc.svcErr)
		req := testRequest{
			client: ts.Client(),
			method: http.MethodDelete,
			url:    fmt.Sprintf("%s/values/%s", ts.URL, tc.key),
		}
		res, err := req.make()
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		svcCall.Unset()
	}
}

func TestHealthEndpoint(t *testing.T) {
	svc := new(mocks.Service)
	ts := newCacheServer(svc)
	defer ts.Close()

	req := testRequest{
		client: ts.Client(),
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/health", ts.URL),
	}
	res, err := req.make()
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	assert.Equal(t, http.StatusOK, res.StatusCode, fmt.Sprintf("expected status %d got %d\n", http.StatusOK, res.StatusCode))

	body, err := io.ReadAll(res.Body)
	assert.Nil(t, err, fmt.Sprintf("unexpected error %v\n", err))
	assert.Contains(t, string(body), "cache service", "expected service description in health response")
}
