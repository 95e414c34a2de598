// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error that
// carries the response body as detail.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := statusErrorMap[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
