// Package fetch downloads datasets over HTTP into the local data folder.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrEmptyURL = errors.New("the URL provided is empty")

// HTTPStatusError is returned for a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// Client downloads files.
type Client struct {
	http *http.Client
}

// New returns a client whose requests time out after timeout.
func New(timeout time.Duration) *Client {
	return NewWithHTTPClient(&http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          4,
			IdleConnTimeout:       30 * time.Second,
		},
	})
}

// NewWithHTTPClient wraps an existing http.Client.
func NewWithHTTPClient(c *http.Client) *Client {
	return &Client{http: c}
}

// Fetch downloads url and writes the body to dir/name, creating dir.
// It returns the written path and the number of bytes written.
func (c *Client) Fetch(ctx context.Context, url, dir, name string) (string, int64, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", 0, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return "", 0, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	path := filepath.Join(dir, name)
	n, err := writeBody(path, resp.Body)
	if err != nil {
		return "", 0, err
	}
	return path, n, nil
}

// writeBody streams r to a temporary file next to path and renames it
// into place, so a failed download never leaves a truncated file.
func writeBody(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("rename into %s: %w", path, err)
	}
	return n, nil
}
