// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
	httpClientUserAgent    = "go-avatar-sync"
)

// HTTPClient wraps resty.Client so adapters can share one configuration.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that retries transport errors
// and 5xx responses a couple of times with backoff.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", httpClientUserAgent).
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}
