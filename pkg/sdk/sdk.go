// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a client library for interacting with the Stash
// services over HTTP.
package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/stashkv/stash/pkg/errors"
)

const (
	valuesEndpoint   = "values"
	pagesEndpoint    = "pages"
	accessesEndpoint = "pages/accesses"
	healthEndpoint   = "health"

	// CTJSON represents JSON content type.
	CTJSON = "application/json"
)

// Value is a stored value returned by the cache service.
type Value struct {
	Key   string      `json:"key"`
	Kind  string      `json:"kind,omitempty"`
	Value interface{} `json:"value"`
}

// Page is a fetched page returned by the pages service.
type Page struct {
	URL      string `json:"url"`
	Content  string `json:"content"`
	Cached   bool   `json:"cached"`
	Accesses uint64 `json:"accesses,omitempty"`
}

// HealthInfo contains service health check response.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
	InstanceID  string `json:"instance_id"`
}

// SDK contains Stash API.
type SDK interface {
	// Store persists a value in the cache under a fresh random key and
	// returns the key.
	//
	// For example:
	//  key, _ := sdk.Store("hello", "string")
	//  fmt.Println(key)
	Store(value interface{}, kind string) (string, errors.SDKError)

	// Value returns a stored value decoded as the given kind.
	Value(key, kind string) (Value, errors.SDKError)

	// Remove deletes a stored value.
	Remove(key string) errors.SDKError

	// Page returns the content of a URL via the pages service.
	Page(url string) (Page, errors.SDKError)

	// Accesses returns how many times a URL has been fetched.
	Accesses(url string) (uint64, errors.SDKError)

	// Health returns the health of the given service, one of "cache" or
	// "pages".
	Health(service string) (HealthInfo, errors.SDKError)
}

// Config contains sdk configuration parameters.
type Config struct {
	CacheURL string
	PagesURL string

	MsgContentType  string
	TLSVerification bool
}

type stashSDK struct {
	cacheURL string
	pagesURL string

	msgContentType string
	client         *http.Client
}

// NewSDK returns new Stash SDK instance.
func NewSDK(conf Config) SDK {
	contentType := conf.MsgContentType
	if contentType == "" {
		contentType = CTJSON
	}

	return &stashSDK{
		cacheURL: conf.CacheURL,
		pagesURL: conf.PagesURL,

		msgContentType: contentType,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

func (sdk stashSDK) Store(value interface{}, kind string) (string, errors.SDKError) {
	req := struct {
		Kind  string      `json:"kind,omitempty"`
		Value interface{} `json:"value"`
	}{
		Kind:  kind,
		Value: value,
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", errors.NewSDKError(err)
	}

	reqURL := fmt.Sprintf("%s/%s", sdk.cacheURL, valuesEndpoint)
	body, sdkerr := sdk.processRequest(http.MethodPost, reqURL, data, http.StatusCreated)
	if sdkerr != nil {
		return "", sdkerr
	}

	var res Value
	if err := json.Unmarshal(body, &res); err != nil {
		return "", errors.NewSDKError(err)
	}

	return res.Key, nil
}

func (sdk stashSDK) Value(key, kind string) (Value, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.cacheURL, valuesEndpoint, key)
	if kind != "" {
		reqURL = fmt.Sprintf("%s?kind=%s", reqURL, url.QueryEscape(kind))
	}

	body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Value{}, sdkerr
	}

	var res Value
	if err := json.Unmarshal(body, &res); err != nil {
		return Value{}, errors.NewSDKError(err)
	}

	return res, nil
}

func (sdk stashSDK) Remove(key string) errors.SDKError {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.cacheURL, valuesEndpoint, key)
	_, sdkerr := sdk.processRequest(http.MethodDelete, reqURL, nil, http.StatusNoContent)

	return sdkerr
}

func (sdk stashSDK) Page(pageURL string) (Page, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s?url=%s", sdk.pagesURL, pagesEndpoint, url.QueryEscape(pageURL))

	body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Page{}, sdkerr
	}

	var res Page
	if err := json.Unmarshal(body, &res); err != nil {
		return Page{}, errors.NewSDKError(err)
	}

	return res, nil
}

func (sdk stashSDK) Accesses(pageURL string) (uint64, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s?url=%s", sdk.pagesURL, accessesEndpoint, url.QueryEscape(pageURL))

	body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return 0, sdkerr
	}

	var res Page
	if err := json.Unmarshal(body, &res); err != nil {
		return 0, errors.NewSDKError(err)
	}

	return res.Accesses, nil
}

func (sdk stashSDK) Health(service string) (HealthInfo, errors.SDKError) {
	baseURL := sdk.cacheURL
	if service == "pages" {
		baseURL = sdk.pagesURL
	}
	reqURL := fmt.Sprintf("%s/%s", baseURL, healthEndpoint)

	body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var res HealthInfo
	if err := json.Unmarshal(body, &res); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return res, nil
}

// processRequest creates and sends a new HTTP request, and checks for errors
// in the HTTP response. It then returns the response body and the associated
// error(s) (if any).
func (sdk stashSDK) processRequest(method, reqURL string, data []byte, expectedRespCodes ...int) ([]byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return []byte{}, errors.NewSDKError(err)
	}

	req.Header.Set("Content-Type", sdk.msgContentType)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	if sdkerr := errors.CheckError(resp, expectedRespCodes...); sdkerr != nil {
		return []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []byte{}, errors.NewSDKError(err)
	}

	return body, nil
}
