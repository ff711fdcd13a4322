// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strata-dev/strata/pkg/files"
)

func TestHTTPFileSources(t *testing.T) {
	url := "http://example.com/some/path"

	client := NewTestClient(func(req *http.Request) *http.Response {
		require.Equal(t, req.URL.String(), url)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`OK`)),
			// Must be set to non-nil value or it panics
			Header: make(http.Header),
		}
	})

	fileSource := files.NewHTTPSource(url)
	fileSource.Client = client
	body, err := fileSource.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("OK"), body)

	// Non-OK HTTP Status Code
	status := "404 Not Found"
	client = NewTestClient(func(req *http.Request) *http.Response {
		require.Equal(t, req.URL.String(), url)
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     status,
			Header:     make(http.Header),
		}
	})

	fileSource = files.NewHTTPSource(url)
	fileSource.Client = client
	_, err = fileSource.Bytes()
	require.EqualError(t, err, fmt.Sprintf("Requesting URL '%s': %s", url, status))
}

func TestCachedSourceReadsUnderlyingSourceOnce(t *testing.T) {
	src := &countingSource{data: []byte("data")}
	cached := files.NewCachedSource(src)

	for i := 0; i < 3; i++ {
		bs, err := cached.Bytes()
		require.NoError(t, err)
		require.Equal(t, []byte("data"), bs)
	}

	require.Equal(t, 1, src.reads)
}

func TestFileTypeDetection(t *testing.T) {
	examples := map[string]files.Type{
		"index.tmpl":     files.TypeTemplate,
		"docs/page.html": files.TypeTemplate,
		"docs/meta.yaml": files.TypeMeta,
		"docs/meta.yml":  files.TypeMeta,
		"docs/meta.json": files.TypeMeta,
		"docs/meta.toml": files.TypeMeta,
	}

	for path, expectedType := range examples {
		file := files.MustNewFileFromSource(files.NewBytesSource(path, nil))
		require.Equal(t, expectedType, file.Type(), "path %s", path)
	}
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: RoundTripFunc(fn),
	}
}

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type countingSource struct {
	data  []byte
	reads int
}

func (s *countingSource) Description() string           { return "counting" }
func (s *countingSource) RelativePath() (string, error) { return "counting", nil }

func (s *countingSource) Bytes() ([]byte, error) {
	s.reads++
	return s.data, nil
}
