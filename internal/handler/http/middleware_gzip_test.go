// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with "echo: " and the request body.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Write(append([]byte("echo: "), body...))
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		wantGzipped     bool
		wantBody        string
	}{
		{name: "plain in, plain out", body: []byte("hi"), wantBody: "echo: hi"},
		{name: "plain in, gzip out", acceptEncoding: "gzip", body: []byte("hi"), wantGzipped: true, wantBody: "echo: hi"},
		{name: "gzip among other encodings", acceptEncoding: "deflate, gzip;q=1.0, br", body: []byte("hi"), wantGzipped: true, wantBody: "echo: hi"},
		{name: "gzip in, plain out", contentEncoding: "gzip", body: []byte("packed"), wantBody: "echo: packed"},
		{name: "gzip both ways", acceptEncoding: "gzip", contentEncoding: "gzip", body: []byte("packed"), wantGzipped: true, wantBody: "echo: packed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.contentEncoding != "" {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			req.Header.Set("Content-Encoding", tt.contentEncoding)
			rec := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_KeepsHandlerStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "nope\n", gunzip(t, rec.Body.Bytes()))
}
